package lang

// Message codes emitted by the admin surface. Codes are stable; the localized
// strings are presentation only.
const (
	MsgInvalidRequest       = "invalid_request"
	MsgInvalidTier          = "invalid_tier"
	MsgInvalidDuration      = "invalid_duration"
	MsgInteractiveRequired  = "interactive_actor_required"
	MsgAccountNotResolvable = "account_not_resolvable"
	MsgStoreUnavailable     = "store_unavailable"
	MsgUnauthorized         = "unauthorized"
	MsgTooManyRequests      = "too_many_requests"
	MsgNoSponsors           = "no_sponsors"
	MsgSponsorRevoked       = "sponsor_revoked"
)

var messages = map[string]map[string]string{
	"en": {
		MsgInvalidRequest:       "Invalid request.",
		MsgInvalidTier:          "Unknown sponsor tier.",
		MsgInvalidDuration:      "Duration must be a non-negative number of days.",
		MsgInteractiveRequired:  "Granting a private tier requires an interactive session.",
		MsgAccountNotResolvable: "No account matches that name or id.",
		MsgStoreUnavailable:     "The entitlement store is unavailable; try again later.",
		MsgUnauthorized:         "Authentication required.",
		MsgTooManyRequests:      "Too many requests.",
		MsgNoSponsors:           "There are no sponsors.",
		MsgSponsorRevoked:       "Sponsor status revoked.",
	},
	"es": {
		MsgInvalidRequest:       "Solicitud no válida.",
		MsgInvalidTier:          "Nivel de patrocinio desconocido.",
		MsgInvalidDuration:      "La duración debe ser un número de días no negativo.",
		MsgInteractiveRequired:  "Asignar un nivel privado requiere una sesión interactiva.",
		MsgAccountNotResolvable: "Ninguna cuenta coincide con ese nombre o id.",
		MsgStoreUnavailable:     "El almacén de patrocinios no está disponible; inténtalo más tarde.",
		MsgUnauthorized:         "Se requiere autenticación.",
		MsgTooManyRequests:      "Demasiadas solicitudes.",
		MsgNoSponsors:           "No hay patrocinadores.",
		MsgSponsorRevoked:       "Patrocinio revocado.",
	},
}

// Localize returns the string for code in the given language, falling back to
// English, then to the code itself (codes are meaningful on their own).
func Localize(language, code string) string {
	if m, ok := messages[language]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := messages["en"][code]; ok {
		return s
	}
	return code
}
