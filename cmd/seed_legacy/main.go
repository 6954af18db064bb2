// seed_legacy genera un script SQL para poblar vendedores, clientes y documentos a partir de
// las exportaciones CSV del sistema administrativo anterior (separador ';', ISO-8859-1 o UTF-8).
//
// Uso: go run ./cmd/seed_legacy [directorio]
// Lee sellers.csv, clients.csv y documents.csv del directorio (por defecto el actual).
// Escribe: seed_legacy.sql en el mismo directorio.
//
// Formatos:
//
//	sellers.csv    código;nombre;cédula;teléfono;email
//	clients.csv    id;nombre;rif;teléfono;email;dirección;vendedor;días_crédito
//	documents.csv  id;cliente;vendedor;tipo;número;monto;saldo;emisión;vencimiento;anulado;condición
//
// Fechas dd/mm/aaaa, montos con coma decimal ("1.234,56") y anulado "S"/"N".
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

func main() {
	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	var sql bytes.Buffer
	sql.WriteString("-- Cartera importada del sistema anterior\n")
	sql.WriteString("-- Generado por cmd/seed_legacy\n\n")

	counts := make(map[string]int)
	for _, step := range []struct {
		file  string
		write func(io.Writer, [][]string) (int, []error)
	}{
		{"sellers.csv", writeSellers},
		{"clients.csv", writeClients},
		{"documents.csv", writeDocuments},
	} {
		records, err := readCSV(filepath.Join(dir, step.file))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer %s: %v\n", step.file, err)
			os.Exit(1)
		}
		n, errs := step.write(&sql, records)
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "%s: %v\n", step.file, e)
		}
		counts[step.file] = n
	}

	outPath := filepath.Join(dir, "seed_legacy.sql")
	if err := os.WriteFile(outPath, sql.Bytes(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d vendedores, %d clientes, %d documentos\n",
		outPath, counts["sellers.csv"], counts["clients.csv"], counts["documents.csv"])
}

// readCSV lee el archivo completo; si no es UTF-8 válido lo decodifica como ISO-8859-1.
// Se descarta la primera fila cuando es un encabezado.
func readCSV(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) > 0 && isHeader(records[0]) {
		records = records[1:]
	}
	return records, nil
}

func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(rec[0])) {
	case "codigo", "código", "code", "id":
		return true
	}
	return false
}

func writeSellers(w io.Writer, records [][]string) (int, []error) {
	var errs []error
	n := 0
	for i, rec := range records {
		if len(rec) < 2 || field(rec, 0) == "" {
			errs = append(errs, fmt.Errorf("fila %d: código y nombre requeridos", i+1))
			continue
		}
		fmt.Fprintf(w, "INSERT INTO sellers (code, name, id_number, phone, email) VALUES (%s, %s, %s, %s, %s)\n",
			quote(field(rec, 0)), quote(field(rec, 1)), quote(field(rec, 2)), quote(field(rec, 3)), quote(field(rec, 4)))
		io.WriteString(w, "ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name;\n")
		n++
	}
	io.WriteString(w, "\n")
	return n, errs
}

func writeClients(w io.Writer, records [][]string) (int, []error) {
	var errs []error
	n := 0
	for i, rec := range records {
		if len(rec) < 2 || field(rec, 0) == "" {
			errs = append(errs, fmt.Errorf("fila %d: id y nombre requeridos", i+1))
			continue
		}
		term := "NULL"
		if t := field(rec, 7); t != "" {
			days, err := strconv.Atoi(t)
			if err != nil {
				errs = append(errs, fmt.Errorf("fila %d: días de crédito %q", i+1, t))
				continue
			}
			term = strconv.Itoa(days)
		}
		fmt.Fprintf(w, "INSERT INTO clients (id, name, tax_id, phone, email, address, seller_code, payment_term_days) VALUES (%s, %s, %s, %s, %s, %s, %s, %s)\n",
			quote(field(rec, 0)), quote(field(rec, 1)), quote(field(rec, 2)), quote(field(rec, 3)),
			quote(field(rec, 4)), quote(field(rec, 5)), quoteOrNull(field(rec, 6)), term)
		io.WriteString(w, "ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, seller_code = EXCLUDED.seller_code;\n")
		n++
	}
	io.WriteString(w, "\n")
	return n, errs
}

// writeDocuments aplica las mismas reglas que el adaptador de lectura: tipo conocido,
// saldo negativo solo en créditos y vencimiento obligatorio en facturas y notas de débito.
func writeDocuments(w io.Writer, records [][]string) (int, []error) {
	var errs []error
	n := 0
	for i, rec := range records {
		line, err := documentInsert(rec)
		if err != nil {
			errs = append(errs, fmt.Errorf("fila %d: %w", i+1, err))
			continue
		}
		io.WriteString(w, line)
		n++
	}
	return n, errs
}

func documentInsert(rec []string) (string, error) {
	if len(rec) < 8 {
		return "", fmt.Errorf("se esperaban al menos 8 columnas, hay %d", len(rec))
	}
	dt := entity.DocType(strings.ToUpper(field(rec, 3)))
	if !dt.Valid() {
		return "", fmt.Errorf("tipo %q desconocido", field(rec, 3))
	}
	amount, err := parseAmount(field(rec, 5))
	if err != nil {
		return "", fmt.Errorf("monto: %w", err)
	}
	balance, err := parseAmount(field(rec, 6))
	if err != nil {
		return "", fmt.Errorf("saldo: %w", err)
	}
	if balance.IsNegative() && !dt.AllowsNegativeBalance() {
		return "", fmt.Errorf("%s con saldo negativo", dt)
	}
	issue, err := parseDate(field(rec, 7))
	if err != nil || issue == "NULL" {
		return "", fmt.Errorf("fecha de emisión %q", field(rec, 7))
	}
	due, err := parseDate(field(rec, 8))
	if err != nil {
		return "", fmt.Errorf("fecha de vencimiento %q", field(rec, 8))
	}
	if due == "NULL" && dt.RequiresDueDate() {
		return "", fmt.Errorf("%s sin fecha de vencimiento", dt)
	}
	voided := strings.EqualFold(field(rec, 9), "S")

	return fmt.Sprintf("INSERT INTO documents (id, client_id, seller_code, doc_type, doc_number, amount, balance, issue_date, due_date, voided, payment_term_code) VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %t, %s)\n"+
		"ON CONFLICT (id) DO UPDATE SET balance = EXCLUDED.balance, voided = EXCLUDED.voided;\n",
		quote(field(rec, 0)), quote(field(rec, 1)), quoteOrNull(field(rec, 2)), quote(string(dt)), quote(field(rec, 4)),
		amount.StringFixed(2), balance.StringFixed(2), issue, due, voided, quoteOrNull(field(rec, 10)),
	), nil
}

// parseAmount acepta "1.234,56", "1234,56" y "1234.56".
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}

// parseDate convierte dd/mm/aaaa en un literal DATE; "" es NULL.
func parseDate(s string) (string, error) {
	if s == "" {
		return "NULL", nil
	}
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return "", err
	}
	return "'" + t.Format("2006-01-02") + "'", nil
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteOrNull(s string) string {
	if s == "" {
		return "NULL"
	}
	return quote(s)
}
