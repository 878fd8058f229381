package model

// Paciente is the clinical record root. Its id is derived once from
// demographics at registration (see internal/identity) and never changes
// afterwards, even when the demographics are edited. The embedded
// collections are always present after the first save: an empty slice,
// never null, so stored JSON stays uniform.
type Paciente struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	FechaNac  string `json:"fecha_nac"`
	Edad      string `json:"edad"`
	Telefono  string `json:"telefono"`
	Correo    string `json:"correo"`
	Ocupacion string `json:"ocupacion"`
	Genero    string `json:"genero"`

	// Anamnesis
	Motivo       string `json:"motivo"`
	UsasLentes   bool   `json:"usasLentes"`
	DesdeLentes  string `json:"desdeLentes"`
	UltimoExamen string `json:"ultimoExamen"`

	Sintomas   Sintomas   `json:"sintomas"`
	HistMed    HistMed    `json:"histmed"`
	HistOcular HistOcular `json:"histOcular"`

	Consultas []Consulta   `json:"consultas"`
	Finanzas  []Movimiento `json:"finanzas"`

	// Citas is the pre-migration embedded appointment list. The global
	// agenda is the source of truth now; this field is read only as a
	// fallback for records created before the migration.
	Citas []CitaLegacy `json:"citas"`
}

// Sintomas is the intake symptom checklist.
type Sintomas struct {
	DolorCabeza   bool   `json:"dolorCabeza"`
	Mareos        bool   `json:"mareos"`
	OjosRojos     bool   `json:"ojosRojos"`
	Irritacion    bool   `json:"irritacion"`
	Picazon       bool   `json:"picazon"`
	Lagrimeo      bool   `json:"lagrimeo"`
	VisionDoble   bool   `json:"visionDoble"`
	VisionBorrosa bool   `json:"visionBorrosa"`
	ArosLuz       bool   `json:"arosLuz"`
	OjoSeco       bool   `json:"ojoSeco"`
	Miodesopsias  bool   `json:"miodesopsias"`
	Otro          string `json:"otro"`
}

// HistMed is the general medical history.
type HistMed struct {
	PadeceEnfermedad bool   `json:"padeceEnfermedad"`
	Diabetes         bool   `json:"diabetes"`
	DiabetesDesde    string `json:"diabetesDesde"`
	Hipertension     bool   `json:"hipertension"`
	HTADesde         string `json:"htaDesde"`
	TxMedica         string `json:"txMedica"`
	FamEnf           string `json:"famEnf"`
	OtraMed          string `json:"otraMed"`
	OtraMedDesde     string `json:"otraMedDesde"`
}

// HistOcular is the ocular medical history.
type HistOcular struct {
	EnfOcular     bool   `json:"enfOcular"`
	Catarata      bool   `json:"catarata"`
	CatarataDesde string `json:"catarataDesde"`
	Glaucoma      bool   `json:"glaucoma"`
	GlaucomaDesde string `json:"glaucomaDesde"`
	DMAE          bool   `json:"dmae"`
	DMAEDesde     string `json:"dmaeDesde"`
	Retino        bool   `json:"retino"`
	RetinoDesde   string `json:"retinoDesde"`
	AlterNO       bool   `json:"alterNO"`
	AlterNODesde  string `json:"alterNODesde"`
	OtraOcular    string `json:"otraOcular"`
	TxOcular      string `json:"txOcular"`
	UltOft        string `json:"ultOft"`
}

// Movimiento is one financial entry of a patient. Tipo is free text in
// old records; totals only recognize "venta" and "pago"
// (case-insensitive). Monto is kept as the raw string the user typed and
// parsed leniently at view time.
type Movimiento struct {
	Tipo  string `json:"tipo"`
	Fecha string `json:"fecha"`
	Monto string `json:"monto"`
}

// CitaLegacy is a pre-migration embedded appointment: date and time are
// separate display strings with no absolute instant.
type CitaLegacy struct {
	Fecha  string `json:"fecha"`
	Hora   string `json:"hora"`
	Motivo string `json:"motivo"`
	Estado string `json:"estado"`
	Notas  string `json:"notas"`
}
