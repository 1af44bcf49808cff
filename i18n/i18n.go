package i18n

import (
	"log/slog"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

// EnvLang forces the UI language.
const EnvLang = "VORKATHHELPER_LANG"

var lang = "en"

var supported = []string{"pt", "es", "de", "nl"}

var translations = map[string]map[string]string{
	"Next special: %s": {
		"pt": "Próximo especial: %s",
		"es": "Próximo especial: %s",
		"de": "Nächster Spezialangriff: %s",
		"nl": "Volgende speciale aanval: %s",
	},
	"unknown": {
		"pt": "desconhecido",
		"es": "desconocido",
		"de": "unbekannt",
		"nl": "onbekend",
	},
	"ice_barrage": {
		"pt": "Rajada de gelo",
		"es": "Ráfaga de hielo",
		"de": "Eissperrfeuer",
		"nl": "IJsbarrage",
	},
	"poison_pool": {
		"pt": "Poça de veneno",
		"es": "Charco de veneno",
		"de": "Giftpfütze",
		"nl": "Gifpoel",
	},
	"Waiting for Vorkath": {
		"pt": "Aguardando Vorkath",
		"es": "Esperando a Vorkath",
		"de": "Warte auf Vorkath",
		"nl": "Wachten op Vorkath",
	},
	"Help": {
		"pt": "Ajuda",
		"es": "Ayuda",
		"de": "Hilfe",
		"nl": "Help",
	},
	"Close": {
		"pt": "Fechar",
		"es": "Cerrar",
		"de": "Schließen",
		"nl": "Sluiten",
	},
	"help_text": {
		"en": "The number counts Vorkath's attacks since the last special.\nThe icon shows the predicted next special.\nRight-click the indicator to reset it.",
		"pt": "O número conta os ataques de Vorkath desde o último especial.\nO ícone mostra o próximo especial previsto.\nClique com o botão direito para reiniciar.",
		"es": "El número cuenta los ataques de Vorkath desde el último especial.\nEl icono muestra el próximo especial previsto.\nHaz clic derecho para reiniciar.",
		"de": "Die Zahl zählt Vorkaths Angriffe seit dem letzten Spezialangriff.\nDas Symbol zeigt den erwarteten nächsten Spezialangriff.\nRechtsklick setzt die Anzeige zurück.",
		"nl": "Het getal telt Vorkaths aanvallen sinds de laatste speciale aanval.\nHet icoon toont de verwachte volgende speciale aanval.\nRechtsklik om te resetten.",
	},
}

// Init picks the language from EnvLang or the system locale.
func Init() {
	if forced := strings.TrimSpace(os.Getenv(EnvLang)); forced != "" {
		slog.Info("language forced", "env", EnvLang, "lang", forced)
		lang = forced
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		slog.Info("no user locale detected, defaulting to english", "err", err)
		lang = "en"
		return
	}
	lang = Match(userLocales[0])
	slog.Info("language set", "locale", userLocales[0], "lang", lang)
}

// Match maps a locale such as "pt-BR" to a supported language.
func Match(userLocale string) string {
	for _, l := range supported {
		if strings.HasPrefix(userLocale, l) {
			return l
		}
	}
	return "en"
}

// SetLang overrides the language.
func SetLang(l string) {
	lang = l
}

func T(key string) string {
	entry := translations[key]
	if translated, ok := entry[lang]; ok {
		return translated
	}
	if translated, ok := entry["en"]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	return lang
}
