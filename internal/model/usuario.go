package model

// Usuario is a registered account of the auth demo. The password is
// stored in the clear on purpose: this mirrors the demo contract of the
// original front-end and is documented as insecure. Do not reuse this
// store for anything that matters.
type Usuario struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Pass  string `json:"pass"`
}

// Sesion is the active-session record persisted under its own key.
type Sesion struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
