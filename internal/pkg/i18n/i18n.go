// Package i18n provides the static translation tables for the UI layer.
// Lookup never fails: a missing key is returned verbatim so the UI always
// has something to render.
package i18n

// Language is a supported UI language code
type Language string

const (
	LangEN Language = "en"
	LangES Language = "es"
)

// Default is the language of a fresh application state
const Default = LangEN

// Valid reports whether the code is a supported language
func (l Language) Valid() bool {
	return l == LangEN || l == LangES
}

var tables = map[Language]map[string]string{
	LangEN: {
		"app_title":    "Coffee Cupping App",
		"login":        "Login",
		"logout":       "Logout",
		"register":     "Register",
		"guest_login":  "Continue as Guest",
		"email":        "Email",
		"password":     "Password",
		"welcome":      "Welcome",
		"dashboard":    "Dashboard",
		"new_session":  "New Cupping Session",
		"my_sessions":  "My Sessions",
		"samples":      "Samples",
		"cups":         "Cups per Sample",
		"protocol":     "Evaluation Protocol",
		"flavor_wheel": "Flavor Wheel",
		"profile":      "Flavor Profile",
		"save":         "Save",
		"language":     "Language",
	},
	LangES: {
		"app_title":    "App de Catación de Café",
		"login":        "Iniciar Sesión",
		"logout":       "Cerrar Sesión",
		"register":     "Registrarse",
		"guest_login":  "Continuar como Invitado",
		"email":        "Correo Electrónico",
		"password":     "Contraseña",
		"welcome":      "Bienvenido",
		"dashboard":    "Panel Principal",
		"new_session":  "Nueva Sesión de Catación",
		"my_sessions":  "Mis Sesiones",
		"samples":      "Muestras",
		"cups":         "Tazas por Muestra",
		"protocol":     "Protocolo de Evaluación",
		"flavor_wheel": "Rueda de Sabores",
		"profile":      "Perfil de Sabor",
		"save":         "Guardar",
		"language":     "Idioma",
	},
}

// Text returns the translation of key in lang, falling back to the key
// itself when the key (or the language) has no entry.
func Text(lang Language, key string) string {
	if table, ok := tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	return key
}

// Table returns a copy of the full translation table for lang
func Table(lang Language) map[string]string {
	src := tables[lang]
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
