package domain

import (
	"fmt"
	"time"
)

// UnassignedCommittee is stored when the source shows no committee for a bill.
const UnassignedCommittee = "NO ASIGNADA"

// Identifier is a bill's registration number in one chamber for one year.
type Identifier struct {
	Number int `json:"number"`
	Year   int `json:"year"`
}

func (i Identifier) String() string {
	return fmt.Sprintf("%d/%d", i.Number, i.Year)
}

type Status struct {
	State      string `json:"state"`
	Annotation string `json:"annotation,omitempty"`
}

// SummaryRecord is one row of a legislatura listing page.
type SummaryRecord struct {
	Committee    string
	Status       Status
	Title        string
	Sponsors     []string
	Numero       Identifier
	Accumulated  []Identifier
	NumeroCamara *Identifier
	FiledAt      time.Time
	URL          string
}

type DebateStage string

const (
	DebateFirst        DebateStage = "primer"
	DebateSecond       DebateStage = "segundo"
	DebateConciliation DebateStage = "conciliacion"
)

type Rapporteur struct {
	Name   string      `db:"nombre" json:"name"`
	Debate DebateStage `db:"debate" json:"debate"`
}

// Publications holds the document links of a bill's detail page. A nil link
// means the source has no document for that slot.
type Publications struct {
	ExposicionMotivos *string `db:"exposicion_motivos" json:"exposicion_motivos"`
	PrimeraPonencia   *string `db:"primera_ponencia" json:"primera_ponencia"`
	SegundaPonencia   *string `db:"segunda_ponencia" json:"segunda_ponencia"`
	TextoPlenaria     *string `db:"texto_plenaria" json:"texto_plenaria"`
	Conciliacion      *string `db:"conciliacion" json:"conciliacion"`
	Objeciones        *string `db:"objeciones" json:"objeciones"`
	Concepto          *string `db:"concepto" json:"concepto"`
	TextoRehecho      *string `db:"texto_rehecho" json:"texto_rehecho"`
	SentenciaCorte    *string `db:"sentencia_corte" json:"sentencia_corte"`
}

// DetailRecord is everything read from a bill's detail page.
type DetailRecord struct {
	Numero            Identifier
	NumeroCamara      *Identifier
	Title             string
	Status            Status
	Committee         string
	Origin            string
	LawType           string
	FiledAt           time.Time
	SentToCommitteeAt *time.Time
	FirstDebateAt     *time.Time
	SecondDebateAt    *time.Time
	ConciliationAt    *time.Time
	Sponsors          []string
	Rapporteurs       []Rapporteur
	Publications      Publications
}

// BillState is the stored reconciliation state of a bill.
type BillState struct {
	ID         int64   `db:"id"`
	Numero     string  `db:"numero"`
	ListHash   *string `db:"list_hash"`
	DetailHash *string `db:"detail_hash"`
}

// DetailTask is a persisted bill whose detail page should be (re)captured.
type DetailTask struct {
	BillID int64  `db:"id"`
	Numero string `db:"numero"`
	URL    string `db:"url"`
	State  string `db:"estado"`
}

type Stage string

const (
	StageList   Stage = "list"
	StageDetail Stage = "detail"
)

// BillChange describes a committed insert or update of a bill.
type BillChange struct {
	BillID      int64  `json:"bill_id"`
	Kind        Kind   `json:"kind"`
	Numero      string `json:"numero"`
	Legislatura string `json:"legislatura"`
	Stage       Stage  `json:"stage"`
	Created     bool   `json:"created"`
	Hash        string `json:"hash"`
}

// BillRow is the flattened view of a bill used by reports.
type BillRow struct {
	Kind            Kind       `db:"kind" json:"kind"`
	Numero          string     `db:"numero" json:"numero"`
	NumeroCamara    *string    `db:"numero_camara" json:"numero_camara"`
	Legislatura     string     `db:"legislatura" json:"legislatura"`
	Titulo          string     `db:"titulo" json:"titulo"`
	Estado          string     `db:"estado" json:"estado"`
	EstadoAnotacion *string    `db:"estado_anotacion" json:"estado_anotacion"`
	Comision        string     `db:"comision" json:"comision"`
	FechaRadicado   time.Time  `db:"fecha_radicado" json:"fecha_radicado"`
	Origen          *string    `db:"origen" json:"origen"`
	TipoLey         *string    `db:"tipo_ley" json:"tipo_ley"`
	FechaPrimerDeb  *time.Time `db:"fecha_aprobacion_primer_debate" json:"fecha_aprobacion_primer_debate"`
	FechaSegundoDeb *time.Time `db:"fecha_aprobacion_segundo_debate" json:"fecha_aprobacion_segundo_debate"`
	Autores         string     `db:"autores" json:"autores"`
	URL             string     `db:"url" json:"url"`
}
