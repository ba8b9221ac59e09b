package assessment

import "github.com/clbp/clbp/internal/i18n"

var (
	txtTitle          = i18n.T("Assessment", "ارزیابی")
	txtSteps          = i18n.T("Questionnaires", "پرسشنامه‌ها")
	txtStepOf         = i18n.T("Step %d of %d", "مرحله %d از %d")
	txtAnswered       = i18n.T("Answered", "پاسخ داده شده")
	txtCompleted      = i18n.T("Completed", "تکمیل شده")
	txtRemaining      = i18n.T("Time left", "زمان باقی‌مانده")
	txtMinutes        = i18n.T("min", "دقیقه")
	txtSaving         = i18n.T("Saving...", "در حال ذخیره...")
	txtSaveWarning    = i18n.T("Save failed, progress kept in memory", "ذخیره ناموفق بود، پیشرفت در حافظه نگه داشته شد")
	txtUnsaved        = i18n.T("Unsaved changes", "تغییرات ذخیره نشده")
	txtSavedAt        = i18n.T("Saved", "ذخیره شد")
	txtNotSaved       = i18n.T("Not saved yet", "هنوز ذخیره نشده")
	txtNoQuestions    = i18n.T("This questionnaire has no items in this build. Press n to continue.", "این پرسشنامه در این نسخه سؤالی ندارد. برای ادامه n را بزنید.")
	txtBodyMap        = i18n.T("Select the areas where you have felt pain:", "نواحی که در آن احساس درد داشته‌اید را انتخاب کنید:")
	txtTypeHere       = i18n.T("Press Enter to type", "برای نوشتن Enter را بزنید")
	txtPrevious       = i18n.T("Previous", "قبلی")
	txtNext           = i18n.T("Next", "بعدی")
	txtFinish         = i18n.T("Finish", "پایان")
	txtSaveExit       = i18n.T("Save & exit", "ذخیره و خروج")
	txtSaveFailed     = i18n.T("Could not save. Your answers are still here; try again.", "ذخیره انجام نشد. پاسخ‌های شما حفظ شده است؛ دوباره تلاش کنید.")
	txtCompleteFailed = i18n.T("Could not finish the assessment. Try again.", "پایان ارزیابی انجام نشد. دوباره تلاش کنید.")
	txtConfirmTitle   = i18n.T("Complete assessment?", "تکمیل ارزیابی؟")
	txtConfirmBody    = i18n.T("Your answers will be submitted and saved progress cleared.", "پاسخ‌های شما ثبت و پیشرفت ذخیره‌شده پاک می‌شود.")
	txtConfirmYes     = i18n.T("Complete", "تکمیل")
	txtConfirmNo      = i18n.T("Keep editing", "ادامه ویرایش")
	txtMove           = i18n.T("Move", "حرکت")
	txtAnswer         = i18n.T("Answer", "پاسخ")
	txtSelect         = i18n.T("Select", "انتخاب")
	txtNextPrev       = i18n.T("Next/Prev", "بعدی/قبلی")
	txtDone           = i18n.T("Done", "تأیید")
	txtCancel         = i18n.T("Cancel", "لغو")
	txtBack           = i18n.T("Back", "بازگشت")
)
