package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestDocumentInsert(t *testing.T) {
	line, err := documentInsert([]string{"D1", "C1", "A", "fact", "0001", "1.234,56", "1.000,00", "03/02/2025", "05/03/2025", "N", ""})
	require.NoError(t, err)
	assert.Contains(t, line, "'FACT'")
	assert.Contains(t, line, "1234.56, 1000.00")
	assert.Contains(t, line, "'2025-02-03', '2025-03-05', false, NULL")

	_, err = documentInsert([]string{"D2", "C1", "A", "FACT", "0002", "10", "10", "03/02/2025", ""})
	assert.ErrorContains(t, err, "sin fecha de vencimiento")

	_, err = documentInsert([]string{"D3", "C1", "A", "FACT", "0003", "10", "-10", "03/02/2025", "05/03/2025"})
	assert.ErrorContains(t, err, "saldo negativo")

	_, err = documentInsert([]string{"D4", "C1", "A", "XX", "0004", "10", "10", "03/02/2025"})
	assert.ErrorContains(t, err, "desconocido")

	line, err = documentInsert([]string{"D5", "C1", "", "N/CR", "0005", "-200", "-200", "03/02/2025", "", "S"})
	require.NoError(t, err)
	assert.Contains(t, line, "'C1', NULL, 'N/CR'")
	assert.Contains(t, line, "NULL, true")
}

func TestReadCSV_Latin1ConEncabezado(t *testing.T) {
	enc, err := charmap.ISO8859_1.NewEncoder().String("código;nombre\nA;Ana Pérez\nB;O'Neill Núñez\n")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "sellers.csv")
	require.NoError(t, os.WriteFile(path, []byte(enc), 0o644))

	records, err := readCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Ana Pérez", records[0][1])

	var sb strings.Builder
	n, errs := writeSellers(&sb, records)
	assert.Equal(t, 2, n)
	assert.Empty(t, errs)
	assert.Contains(t, sb.String(), "'O''Neill Núñez'")
}
