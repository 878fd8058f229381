package infra

// pdf.go — Inventory catalog generation using go-pdf/fpdf.
// Produces an A4 listing with one row per frame:
//   - Business name header with export timestamp
//   - Item table (id, model, line, price, stock)
//   - CODE128 barcode of the item id, printable for frame labels

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/JavierVixer/OCCHIAPP/internal/model"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/go-pdf/fpdf"
)

// CatalogoPDF renders the inventory as a printable PDF catalog.
type CatalogoPDF struct{}

func NewCatalogoPDF() *CatalogoPDF {
	return &CatalogoPDF{}
}

// Generar renders all items into one document and returns the raw bytes.
func (g *CatalogoPDF) Generar(productos []model.Producto) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "OcchiApp", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Inventario de armazones", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Table header ──────────────────────────────────────────────────────────
	colID := contentW * 0.16
	colModelo := contentW * 0.24
	colLinea := contentW * 0.18
	colPrecio := contentW * 0.12
	colCant := contentW * 0.08
	colCodigo := contentW * 0.22

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(colID, 6, "ID", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colModelo, 6, "Modelo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colLinea, 6, "Linea", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colPrecio, 6, "Precio", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colCant, 6, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(colCodigo, 6, "Codigo", "B", 1, "C", false, 0, "")

	// ── Item rows ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	for _, p := range productos {
		modelo := p.Modelo
		if len(modelo) > 26 {
			modelo = modelo[:25] + "…"
		}
		linea := p.Linea
		if len(linea) > 18 {
			linea = linea[:17] + "…"
		}

		y := pdf.GetY()
		pdf.CellFormat(colID, 12, p.ID, "", 0, "L", false, 0, "")
		pdf.CellFormat(colModelo, 12, modelo, "", 0, "L", false, 0, "")
		pdf.CellFormat(colLinea, 12, linea, "", 0, "L", false, 0, "")
		pdf.CellFormat(colPrecio, 12, "$"+p.Precio.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(colCant, 12, fmt.Sprintf("%d", p.Cantidad), "", 0, "C", false, 0, "")

		if err := g.insertarCodigo(pdf, p.ID, pdf.GetX(), y, colCodigo); err != nil {
			return nil, err
		}
		pdf.Ln(12)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	return buf.Bytes(), nil
}

// GuardarCatalogo writes the catalog to storagePath (created if needed)
// and returns the absolute path to the file.
func (g *CatalogoPDF) GuardarCatalogo(productos []model.Producto, storagePath string) (string, error) {
	out, err := g.Generar(productos)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, fmt.Sprintf("inventario_%s.pdf", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(filePath, out, 0644); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

// insertarCodigo renders the item id as a CODE128 barcode image at (x, y).
func (g *CatalogoPDF) insertarCodigo(pdf *fpdf.Fpdf, id string, x, y, w float64) error {
	code, err := code128.Encode(id)
	if err != nil {
		return fmt.Errorf("pdf: barcode %q: %w", id, err)
	}
	scaled, err := barcode.Scale(code, 200, 60)
	if err != nil {
		return fmt.Errorf("pdf: barcode scale %q: %w", id, err)
	}

	var img bytes.Buffer
	if err := png.Encode(&img, scaled); err != nil {
		return fmt.Errorf("pdf: barcode png %q: %w", id, err)
	}

	name := "barcode-" + id
	pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, &img)
	pdf.ImageOptions(name, x+2, y+1, w-4, 10, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}
