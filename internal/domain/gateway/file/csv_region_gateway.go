package file

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"cek-cuaca/internal/domain/entity"
	"cek-cuaca/pkg/log"

	"go.uber.org/zap"
)

var (
	ErrRegionFileNotFound = errors.New("region file not found")
	ErrRegionFileParse    = errors.New("region file could not be parsed")
)

const (
	headerPrefix  = "adm"
	byteOrderMark = "\ufeff"
)

type csvRegionGateway struct {
	path string
}

// NewCSVRegionGateway reads regions from a code,name CSV file
func NewCSVRegionGateway(path string) RegionGateway {
	return &csvRegionGateway{path: path}
}

func (g *csvRegionGateway) LoadHierarchy() (*entity.Hierarchy, error) {
	f, err := os.Open(g.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Error("region file not found", zap.String("path", g.path))
			return nil, fmt.Errorf("%w: %s", ErrRegionFileNotFound, g.path)
		}
		log.Error("failed to open region file", zap.String("path", g.path), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %v", ErrRegionFileParse, g.path, err)
	}
	defer func() { _ = f.Close() }()

	hierarchy, err := BuildHierarchy(f)
	if err != nil {
		log.Error("failed to read region file", zap.String("path", g.path), zap.Error(err))
		return nil, err
	}

	log.Info("region hierarchy loaded",
		zap.String("path", g.path),
		zap.Int("provinces", hierarchy.Len()))
	return hierarchy, nil
}

// cursor tracks the last region seen at levels 1-3.
type cursor struct {
	province *entity.Region
	city     *entity.Region
	district *entity.Region
}

// BuildHierarchy parses code,name records in file order. A region is attached under the
// most recently seen region of the level above; orphans are skipped with a warning.
func BuildHierarchy(r io.Reader) (*entity.Hierarchy, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	reader.LazyQuotes = true

	hierarchy := entity.NewHierarchy()
	var cur cursor
	line := 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRegionFileParse, err)
		}
		line++

		if line == 1 && len(record) > 0 {
			record[0] = strings.TrimPrefix(record[0], byteOrderMark)
			if isHeader(record) {
				continue
			}
		}
		if len(record) < 2 {
			continue
		}

		code := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		if code == "" {
			continue
		}

		cur.apply(hierarchy, code, name)
	}

	if line == 0 {
		return nil, fmt.Errorf("%w: no records", ErrRegionFileParse)
	}
	return hierarchy, nil
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.HasPrefix(strings.ToLower(strings.TrimSpace(record[0])), headerPrefix)
}

func (c *cursor) apply(hierarchy *entity.Hierarchy, code string, name string) {
	level := entity.LevelOf(code)
	region := entity.NewRegion(code, name)

	switch level {
	case entity.Province:
		c.province = hierarchy.AddProvince(region)
		c.city = nil
		c.district = nil

	case entity.City:
		if c.province == nil {
			warnOrphan(level, code)
			return
		}
		c.city = c.province.AddChild(region)
		c.district = nil

	case entity.District:
		if c.city == nil {
			warnOrphan(level, code)
			return
		}
		c.district = c.city.AddChild(region)

	case entity.Village:
		if c.district == nil {
			warnOrphan(level, code)
			return
		}
		c.district.AddChild(region)

	default:
		log.Warn("unrecognized region code", zap.String("code", code), zap.Int("segments", int(level)))
	}
}

func warnOrphan(level entity.Level, code string) {
	parent := entity.Level(int(level) - 1)
	log.Warn("region without parent skipped",
		zap.String("code", code),
		zap.String("level", level.Key()),
		zap.String("missing_parent", parent.Key()))
}
