package models

// LanguageNames are the display names of the supported interface languages.
var LanguageNames = map[string]string{
	"en": "English",
	"hi": "हिंदी (Hindi)",
	"mr": "मराठी (Marathi)",
	"bn": "বাংলা (Bengali)",
	"ta": "தமிழ் (Tamil)",
	"te": "తెలుగు (Telugu)",
	"kn": "ಕನ್ನಡ (Kannada)",
	"ml": "മലയാളം (Malayalam)",
	"pa": "ਪੰਜਾਬੀ (Punjabi)",
	"gu": "ગુજરાતી (Gujarati)",
}

// TranslationUpdate is the body of POST /translations/:language. Language is
// taken from the path. Entries are merged into the existing dictionary.
type TranslationUpdate struct {
	Language     string            `json:"language" validate:"required,min=2,max=8,lowercase,alpha"`
	Translations map[string]string `json:"translations" validate:"required,min=1"`
}
