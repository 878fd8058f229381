package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/JavierVixer/OCCHIAPP/internal/dates"
	"github.com/JavierVixer/OCCHIAPP/internal/dto"
	"github.com/JavierVixer/OCCHIAPP/internal/model"
	"github.com/JavierVixer/OCCHIAPP/internal/repository"

	"github.com/shopspring/decimal"
)

// VistaService assembles the display-ready record sheet: demographics,
// chronologically re-sorted consultations and finances, money totals,
// and the resolved next appointment.
type VistaService interface {
	Componer(ctx context.Context, id string) (dto.ExpedienteVista, error)
}

type vistaService struct {
	pacientes repository.PacienteRepository
	agenda    AgendaService
	now       func() time.Time
}

func NewVistaService(pacientes repository.PacienteRepository, agenda AgendaService) VistaService {
	return &vistaService{pacientes: pacientes, agenda: agenda, now: time.Now}
}

func (s *vistaService) Componer(ctx context.Context, id string) (dto.ExpedienteVista, error) {
	p, ok := s.pacientes.FindByID(ctx, id)
	if !ok {
		return dto.ExpedienteVista{}, ErrPacienteNoEncontrado
	}

	edad := p.Edad
	if edad == "" {
		if a, ok := dates.Age(p.FechaNac, s.now()); ok {
			edad = strconv.Itoa(a)
		}
	}

	v := dto.ExpedienteVista{
		Datos: dto.DatosGenerales{
			ID:        p.ID,
			Nombre:    p.Nombre,
			FechaNac:  dates.ToDisplay(p.FechaNac),
			Edad:      edad,
			Genero:    p.Genero,
			Ocupacion: p.Ocupacion,
			Telefono:  p.Telefono,
			Correo:    p.Correo,
		},
		Motivo:       p.Motivo,
		UsasLentes:   p.UsasLentes,
		DesdeLentes:  p.DesdeLentes,
		UltimoExamen: p.UltimoExamen,
		Sintomas:     p.Sintomas,
		HistMed:      p.HistMed,
		HistOcular:   p.HistOcular,
		Consultas:    consultaRows(p.Consultas),
		Finanzas:     movimientoRows(p.Finanzas),
		ProximaCita:  s.agenda.ProximaCita(ctx, p),
	}

	vendido := decimal.Zero
	pagado := decimal.Zero
	for _, m := range p.Finanzas {
		monto := parseMonto(m.Monto)
		switch strings.ToLower(strings.TrimSpace(m.Tipo)) {
		case "venta":
			vendido = vendido.Add(monto)
		case "pago":
			pagado = pagado.Add(monto)
		}
	}
	adeudo := vendido.Sub(pagado)
	if adeudo.IsNegative() {
		adeudo = decimal.Zero
	}
	v.TotalVendido = vendido
	v.TotalPagado = pagado
	v.Adeudo = adeudo

	return v, nil
}

// consultaRows sorts by canonical date while keeping each row's original
// slice position, which is the index the consulta endpoints address.
// Unparseable dates canonicalize to the sentinel and group at the front.
func consultaRows(consultas []model.Consulta) []dto.ConsultaRow {
	rows := make([]dto.ConsultaRow, len(consultas))
	for i, c := range consultas {
		rows[i] = dto.ConsultaRow{Indice: i, Fecha: dates.ToDisplay(c.Fecha), Notas: c.Notas}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return dates.Normalize(consultas[rows[i].Indice].Fecha) < dates.Normalize(consultas[rows[j].Indice].Fecha)
	})
	return rows
}

func movimientoRows(movs []model.Movimiento) []dto.MovimientoRow {
	idx := make([]int, len(movs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return dates.Normalize(movs[idx[i]].Fecha) < dates.Normalize(movs[idx[j]].Fecha)
	})
	rows := make([]dto.MovimientoRow, len(movs))
	for i, k := range idx {
		rows[i] = dto.MovimientoRow{Tipo: movs[k].Tipo, Fecha: dates.ToDisplay(movs[k].Fecha), Monto: movs[k].Monto}
	}
	return rows
}

// parseMonto reads a free-text amount leniently: currency symbols and
// thousand separators other than the dot are dropped, and anything still
// unparseable counts as zero so one bad row never breaks the totals.
func parseMonto(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}
