package admin

import "github.com/clbp/clbp/internal/i18n"

var (
	txtTitle         = i18n.T("Admin Dashboard", "داشبورد مدیریت")
	txtHeading       = i18n.T("Clinical Dashboard", "داشبورد بالینی")
	txtTabs          = i18n.T("Tabs", "زبانه‌ها")
	txtScroll        = i18n.T("Scroll", "پیمایش")
	txtSelect        = i18n.T("Select", "انتخاب")
	txtOpen          = i18n.T("Profile", "پروفایل")
	txtBack          = i18n.T("Back", "بازگشت")
	txtRiskFilter    = i18n.T("Risk", "خطر")
	txtStatusFilter  = i18n.T("Status", "وضعیت")
	txtShowing       = i18n.T("%d shown", "%d مورد")
	txtNoMatch       = i18n.T("No patients match the filters.", "بیماری با این فیلترها یافت نشد.")
	txtTotalPatients = i18n.T("Total patients", "کل بیماران")
	txtCompletion    = i18n.T("Completion rate", "نرخ تکمیل")
	txtHighRisk      = i18n.T("High risk", "خطر بالا")
	txtAccuracy      = i18n.T("Model accuracy", "دقت مدل")
	txtDistribution  = i18n.T("Risk distribution", "توزیع خطر")
	txtRosterSummary = i18n.T("Recent patients", "بیماران اخیر")
	txtInRoster      = i18n.T("Patients listed", "بیماران فهرست")
	txtMeanRisk      = i18n.T("Mean risk score", "میانگین امتیاز خطر")
	txtID            = i18n.T("ID", "شناسه")
	txtName          = i18n.T("Name", "نام")
	txtPhase         = i18n.T("Phase", "مرحله")
	txtRiskScore     = i18n.T("Risk score", "امتیاز خطر")
	txtStatus        = i18n.T("Status", "وضعیت")
	txtLastActivity  = i18n.T("Last activity", "آخرین فعالیت")
	txtAlerts        = i18n.T("Alerts", "هشدارها")
	txtTrends        = i18n.T("Performance trend", "روند عملکرد")
	txtDate          = i18n.T("Date", "تاریخ")
	txtAccuracyShort = i18n.T("Acc.", "دقت")
	txtPrecision     = i18n.T("Prec.", "صحت")
	txtRecall        = i18n.T("Recall", "بازخوانی")
	txtROC           = i18n.T("ROC curve", "منحنی ROC")
	txtQuality       = i18n.T("Data quality", "کیفیت داده")
)
