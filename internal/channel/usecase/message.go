package usecase

import "text/template"

func mustText(name, text string) *template.Template {
	return template.Must(template.New(name).Option("missingkey=zero").Parse(text))
}

var (
	tplStart = mustText("start", "Hello{{ with .FirstName }}, {{ . }}{{ end }}!\n\n"+
		"To sign in on the website, share your phone number with the button below.")

	tplContactSaved = mustText("contact_saved", "Thanks, your number *+{{ .PhoneNumber }}* is saved.\n\n"+
		"Press /login to get a one-time code.")

	tplForeignContact = mustText("foreign_contact", "Please share *your own* contact with the button below.")

	tplInvalidContact = mustText("invalid_contact", "This phone number cannot be used to sign in.")

	tplNeedContact = mustText("need_contact", "Share your contact first, then press /login.")

	tplCode = mustText("code", "Phone: *+{{ .PhoneNumber }}*\n"+
		"Code: `{{ .Code }}`\n\n"+
		"The code is valid for {{ .Minutes }} minute{{ if ne .Minutes 1 }}s{{ end }}."+
		"{{ with .LoginURL }}\nEnter it at {{ . }}{{ end }}")

	tplHelp = mustText("help", "/start - share your phone number\n"+
		"/login - get a one-time login code\n"+
		"/help - show this message")

	tplFallbackReady = mustText("fallback_ready", "Press /login to get a one-time code.")

	tplFallbackNew = mustText("fallback_new", "Press /start to begin.")

	tplWelcome = mustText("welcome", "Welcome{{ with .FirstName }}, {{ . }}{{ end }}! Your account is ready.")

	tplUnavailable = mustText("unavailable", "The service is temporarily unavailable, please try again in a moment.")

	tplServerError = mustText("server_error", "Something went wrong, please try again later.")
)
