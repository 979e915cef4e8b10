package db

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yumyai/cgcfinder/logger"
	"github.com/yumyai/cgcfinder/pkg/model"
	"go.uber.org/zap"
)

// Minimum number of tab separated fields in a data row.
const annotationFields = 9

// Column positions in an annotation row
const (
	colContig     = 0
	colCategory   = 2
	colStart      = 3
	colEnd        = 4
	colStrand     = 6
	colAttributes = 8
)

var ErrMalformedRow = errors.New("malformed annotation row")

type ParseError struct {
	Line   int    // 1-based line number in the input
	Reason string // additional context for the error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, ErrMalformedRow, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedRow
}

// LoadAnnotationFile reads the annotation file at path, see ReadAnnotations.
func LoadAnnotationFile(path string) ([]model.Contig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open annotation file: %w", err)
	}
	defer f.Close()

	contigs, err := ReadAnnotations(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Info("Contigs loaded successfully",
		zap.String("file", path),
		zap.Int("contigs", len(contigs)))
	return contigs, nil
}

// ReadAnnotations groups the rows of a tab delimited annotation stream by contig.
// Contigs come back in order of first appearance and genes keep file order.
// Lines starting with '#' and blank lines are skipped.
func ReadAnnotations(r io.Reader) ([]model.Contig, error) {
	var contigs []model.Contig
	position := make(map[string]int)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line_no := 0
	for scanner.Scan() {
		line_no++
		line := strings.TrimRight(scanner.Text(), "\r\n")

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		gene, err := parseAnnotationRow(line)
		if err != nil {
			return nil, &ParseError{Line: line_no, Reason: err.Error()}
		}

		i, ok := position[gene.ContigID]
		if !ok {
			i = len(contigs)
			position[gene.ContigID] = i
			contigs = append(contigs, model.Contig{ID: gene.ContigID})
		}
		contigs[i].Genes = append(contigs[i].Genes, gene)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read annotations: %w", err)
	}

	return contigs, nil
}

func parseAnnotationRow(line string) (model.GeneRecord, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < annotationFields {
		return model.GeneRecord{}, fmt.Errorf("expected at least %d fields, got %d", annotationFields, len(fields))
	}

	start, err := strconv.Atoi(strings.TrimSpace(fields[colStart]))
	if err != nil {
		return model.GeneRecord{}, fmt.Errorf("invalid start %q", fields[colStart])
	}
	end, err := strconv.Atoi(strings.TrimSpace(fields[colEnd]))
	if err != nil {
		return model.GeneRecord{}, fmt.Errorf("invalid end %q", fields[colEnd])
	}

	return model.GeneRecord{
		ContigID:   fields[colContig],
		Category:   model.ParseCategory(fields[colCategory]),
		Label:      fields[colCategory],
		Start:      start,
		End:        end,
		Strand:     fields[colStrand],
		Attributes: fields[colAttributes],
		FeatureID:  model.ParseFeatureID(fields[colAttributes]),
	}, nil
}
