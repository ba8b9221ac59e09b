package home

import "github.com/clbp/clbp/internal/i18n"

var (
	txtTitle      = i18n.T("Home", "خانه")
	txtTagline    = i18n.T("Chronic low back pain risk assessment", "ارزیابی خطر مزمن شدن کمردرد")
	txtStart      = i18n.T("Start Assessment", "شروع ارزیابی")
	txtResume     = i18n.T("Resume Assessment", "ادامه ارزیابی")
	txtResults    = i18n.T("Results", "نتایج")
	txtProfile    = i18n.T("Patient Profile", "پروفایل بیمار")
	txtAdmin      = i18n.T("Admin Dashboard", "داشبورد مدیریت")
	txtToggleLang = i18n.T("Language", "زبان")
	txtExit       = i18n.T("Exit", "خروج")
	txtNoProgress = i18n.T("No assessment in progress", "ارزیابی در حال انجامی وجود ندارد")
	txtStep       = i18n.T("Step %d/%d", "مرحله %d/%d")
	txtDone       = i18n.T("%d done", "%d تکمیل")
	txtAnswers    = i18n.T("%d answers", "%d پاسخ")
	txtSavedAt    = i18n.T("Saved", "ذخیره شده")
	txtLangFailed = i18n.T("Could not save the language preference.", "ذخیره تنظیم زبان انجام نشد.")
	txtMove       = i18n.T("Move", "حرکت")
	txtSelect     = i18n.T("Select", "انتخاب")
)
