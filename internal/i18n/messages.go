package i18n

// Message keys emitted by the API
const (
	MsgInvalidRequestBody = "invalidRequestBody"
	MsgInvalidDate        = "invalidDate"
	MsgDateInPast         = "dateInPast"
	MsgDateAlreadyBooked  = "dateAlreadyBooked"
	MsgBookingSubmitted   = "bookingSubmitted"
	MsgBookingNotFound    = "bookingNotFound"
	MsgProviderNotFound   = "providerNotFound"
	MsgAccessDenied       = "accessDenied"
	MsgInvalidTransition  = "invalidTransition"
	MsgGuestsOverCapacity = "guestsOverCapacity"
	MsgInternalError      = "internalError"
	MsgUnauthorized       = "unauthorized"
	MsgSlugTaken          = "slugTaken"
	MsgProviderExists     = "providerExists"
	MsgUploadFailed       = "uploadFailed"
	MsgReservedNotFound   = "reservedDateNotFound"
	MsgInvalidLanguage    = "invalidLanguage"
)

var builtinMessages = map[Locale]map[string]string{
	LocaleEN: {
		MsgInvalidRequestBody: "invalid request body",
		MsgInvalidDate:        "invalid event date, expected YYYY-MM-DD",
		MsgDateInPast:         "the event date is in the past",
		MsgDateAlreadyBooked:  "this date is already booked, please choose another date",
		MsgBookingSubmitted:   "your booking request has been submitted successfully",
		MsgBookingNotFound:    "booking not found",
		MsgProviderNotFound:   "provider not found",
		MsgAccessDenied:       "access denied",
		MsgInvalidTransition:  "this booking can no longer change to the requested status",
		MsgGuestsOverCapacity: "the number of guests exceeds the venue capacity",
		MsgInternalError:      "internal server error",
		MsgUnauthorized:       "authentication required",
		MsgSlugTaken:          "a provider with this slug already exists",
		MsgProviderExists:     "you already have a registered provider",
		MsgUploadFailed:       "file upload failed",
		MsgReservedNotFound:   "reserved date not found",
		MsgInvalidLanguage:    "unsupported language",
	},
	LocaleSQ: {
		MsgInvalidRequestBody: "trupi i kërkesës është i pavlefshëm",
		MsgInvalidDate:        "data e eventit është e pavlefshme, pritet YYYY-MM-DD",
		MsgDateInPast:         "data e eventit ka kaluar",
		MsgDateAlreadyBooked:  "kjo datë është e rezervuar tashmë, ju lutem zgjidhni një datë tjetër",
		MsgBookingSubmitted:   "kërkesa juaj e rezervimit u dërgua me sukses",
		MsgBookingNotFound:    "rezervimi nuk u gjet",
		MsgProviderNotFound:   "ofruesi nuk u gjet",
		MsgAccessDenied:       "qasja u refuzua",
		MsgInvalidTransition:  "ky rezervim nuk mund të kalojë më në statusin e kërkuar",
		MsgGuestsOverCapacity: "numri i mysafirëve tejkalon kapacitetin e sallës",
		MsgInternalError:      "gabim i brendshëm i serverit",
		MsgUnauthorized:       "kërkohet hyrja në llogari",
		MsgSlugTaken:          "një ofrues me këtë slug ekziston tashmë",
		MsgProviderExists:     "ju tashmë keni një ofrues të regjistruar",
		MsgUploadFailed:       "ngarkimi i skedarit dështoi",
		MsgReservedNotFound:   "data e rezervuar nuk u gjet",
		MsgInvalidLanguage:    "gjuhë e pambështetur",
	},
	LocaleMK: {
		MsgInvalidRequestBody: "неисправно тело на барањето",
		MsgInvalidDate:        "неисправен датум на настанот, се очекува YYYY-MM-DD",
		MsgDateInPast:         "датумот на настанот е во минатото",
		MsgDateAlreadyBooked:  "овој датум е веќе резервиран, изберете друг датум",
		MsgBookingSubmitted:   "вашето барање за резервација е успешно испратено",
		MsgBookingNotFound:    "резервацијата не е пронајдена",
		MsgProviderNotFound:   "давателот не е пронајден",
		MsgAccessDenied:       "пристапот е одбиен",
		MsgInvalidTransition:  "оваа резервација повеќе не може да премине во бараниот статус",
		MsgGuestsOverCapacity: "бројот на гости го надминува капацитетот на салата",
		MsgInternalError:      "внатрешна грешка на серверот",
		MsgUnauthorized:       "потребна е најава",
		MsgSlugTaken:          "давател со овој slug веќе постои",
		MsgProviderExists:     "веќе имате регистриран давател",
		MsgUploadFailed:       "прикачувањето на датотеката не успеа",
		MsgReservedNotFound:   "резервираниот датум не е пронајден",
		MsgInvalidLanguage:    "неподдржан јазик",
	},
}
