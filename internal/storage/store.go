package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/avirni/qwell/internal/quantum"
	"github.com/avirni/qwell/internal/solver"
)

// Store persists solve runs under a base directory, one subdirectory per
// run holding metadata.json, potential.csv, and spectrum.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Shape     string    `json:"shape"`
	ShapeName string    `json:"shape_name"`
	Method    string    `json:"method"`
	Timestamp time.Time `json:"timestamp"`
	XMin      float64   `json:"x_min"`
	XMax      float64   `json:"x_max"`
	Steps     int       `json:"steps"`
	Amplitude float64   `json:"amplitude"`
	States    int       `json:"states"`
	Energies  []float64 `json:"energies"`
}

func (s *Store) Save(req solver.Request, result *solver.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", req.Shape.Slug(), time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Shape:     req.Shape.Slug(),
		ShapeName: req.Shape.Name(),
		Method:    string(result.Method),
		Timestamp: time.Now(),
		XMin:      req.XMin,
		XMax:      req.XMax,
		Steps:     req.Steps,
		Amplitude: req.Amplitude,
		States:    req.States,
		Energies:  result.Spectrum.Values,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writePotentialCSV(filepath.Join(runDir, "potential.csv"), result.Profile); err != nil {
		return "", err
	}
	if err := writeSpectrumCSV(filepath.Join(runDir, "spectrum.csv"), result.Spectrum); err != nil {
		return "", err
	}

	return runID, nil
}

func writePotentialCSV(path string, prof quantum.Profile) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"x", "V"}); err != nil {
		return err
	}
	for i := range prof.X {
		row := []string{
			strconv.FormatFloat(prof.X[i], 'g', -1, 64),
			strconv.FormatFloat(prof.V[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeSpectrumCSV(path string, spec quantum.Spectrum) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{"level", "energy"}
	dim := 0
	if len(spec.Vectors) > 0 {
		dim = len(spec.Vectors[0])
	}
	for i := 0; i < dim; i++ {
		header = append(header, fmt.Sprintf("c%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for k, e := range spec.Values {
		row := []string{
			strconv.Itoa(k),
			strconv.FormatFloat(e, 'g', -1, 64),
		}
		for _, c := range spec.Vectors[k] {
			row = append(row, strconv.FormatFloat(c, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadProfile reads potential.csv back as parallel position and value
// slices.
func (s *Store) LoadProfile(runID string) ([]float64, []float64, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, "potential.csv"))
	if err != nil {
		return nil, nil, err
	}

	x := make([]float64, 0, len(records))
	v := make([]float64, 0, len(records))
	for _, rec := range records {
		if len(rec) < 2 {
			continue
		}
		xi, err1 := strconv.ParseFloat(rec[0], 64)
		vi, err2 := strconv.ParseFloat(rec[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		x = append(x, xi)
		v = append(v, vi)
	}
	return x, v, nil
}

// LoadSpectrum reads spectrum.csv back into eigenvalues and eigenvectors.
func (s *Store) LoadSpectrum(runID string) (quantum.Spectrum, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, "spectrum.csv"))
	if err != nil {
		return quantum.Spectrum{}, err
	}

	spec := quantum.Spectrum{}
	for _, rec := range records {
		if len(rec) < 2 {
			continue
		}
		e, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			continue
		}
		vec := make([]float64, 0, len(rec)-2)
		for _, field := range rec[2:] {
			c, err := strconv.ParseFloat(field, 64)
			if err != nil {
				break
			}
			vec = append(vec, c)
		}
		spec.Values = append(spec.Values, e)
		spec.Vectors = append(spec.Vectors, vec)
	}
	return spec, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return [][]string{}, nil
	}
	return records[1:], nil // drop header
}
