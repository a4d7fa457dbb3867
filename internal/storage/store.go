package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"
)

const (
	KindUnitary        = "unitary"
	KindOrthonormalize = "orthonormalize"
)

var ErrEmptyMatrix = errors.New("storage: matrix file has no rows")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Report records the outcome of one numerical check.
type Report struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	Tolerance float64   `json:"tolerance"`
	Passed    bool      `json:"passed"`
	Loss      float64   `json:"loss"`
}

// SaveReport writes report.json and the checked matrix as matrix.csv into a
// new report directory and returns its ID.
func (s *Store) SaveReport(report Report, m mat.CMatrix) (string, error) {
	now := time.Now()
	report.ID = fmt.Sprintf("%s_%d", report.Kind, now.UnixNano())
	report.Timestamp = now
	report.Rows, report.Cols = m.Dims()

	dir := filepath.Join(s.baseDir, report.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(dir, "report.json"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return "", err
	}

	if err := WriteMatrix(filepath.Join(dir, "matrix.csv"), m); err != nil {
		return "", err
	}
	return report.ID, nil
}

func (s *Store) List() ([]Report, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Report{}, nil
		}
		return nil, err
	}

	reports := make([]Report, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		r, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		reports = append(reports, *r)
	}
	return reports, nil
}

func (s *Store) Load(id string) (*Report, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "report.json"))
	if err != nil {
		return nil, err
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) LoadMatrix(id string) (*mat.CDense, error) {
	return ReadMatrix(filepath.Join(s.baseDir, id, "matrix.csv"))
}

// WriteMatrix writes one CSV record per matrix row, cells formatted as
// complex literals.
func WriteMatrix(path string, m mat.CMatrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		row := make([]string, c)
		for j := range row {
			row[j] = strconv.FormatComplex(m.At(i, j), 'g', -1, 128)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadMatrix parses a CSV file of complex literals. Lines starting with '#'
// are ignored and every row must have the same number of cells.
func ReadMatrix(path string) (*mat.CDense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyMatrix)
	}

	m := mat.NewCDense(len(records), len(records[0]), nil)
	for i, record := range records {
		for j, cell := range record {
			v, err := strconv.ParseComplex(strings.TrimSpace(cell), 128)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d col %d: %w", path, i, j, err)
			}
			m.Set(i, j, v)
		}
	}
	return m, nil
}
