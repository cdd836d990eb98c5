package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/colegios-api/internal/models"
	appErrors "github.com/noah-isme/colegios-api/pkg/errors"
	"github.com/noah-isme/colegios-api/pkg/export"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

type xlsxRenderer interface {
	Render(data export.Dataset, sheet string) ([]byte, error)
}

type departmentLister interface {
	List(ctx context.Context) ([]models.Department, error)
}

type municipalityLister interface {
	List(ctx context.Context) ([]models.Municipality, error)
}

type schoolLister interface {
	List(ctx context.Context) ([]models.School, error)
}

type siteLister interface {
	List(ctx context.Context) ([]models.Site, error)
}

type userLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// ExportSources provides the resource lists that can be exported.
type ExportSources struct {
	Departments    departmentLister
	Municipalities municipalityLister
	Schools        schoolLister
	Sites          siteLister
	Users          userLister
}

// ExportFile is a rendered report ready to be served.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService renders resource lists as CSV, PDF or XLSX.
type ExportService struct {
	sources ExportSources
	csv     csvRenderer
	pdf     pdfRenderer
	xlsx    xlsxRenderer
	logger  *zap.Logger
}

// NewExportService constructs an ExportService. Nil renderers fall back to the pkg/export defaults.
func NewExportService(sources ExportSources, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer, xlsx xlsxRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if xlsx == nil {
		xlsx = export.NewXLSXExporter()
	}
	return &ExportService{sources: sources, csv: csv, pdf: pdf, xlsx: xlsx, logger: logger}
}

// Export renders the list of resource in the requested format. An empty format defaults to CSV.
func (s *ExportService) Export(ctx context.Context, resource string, format models.ReportFormat) (*ExportFile, error) {
	if format == "" {
		format = models.ReportFormatCSV
	}
	format = models.ReportFormat(strings.ToLower(string(format)))
	if !format.Valid() {
		return nil, appErrors.Validation("Formato de exportación no soportado")
	}

	data, err := s.dataset(ctx, resource)
	if err != nil {
		return nil, err
	}

	var content []byte
	switch format {
	case models.ReportFormatPDF:
		content, err = s.pdf.Render(data, resource)
	case models.ReportFormatXLSX:
		content, err = s.xlsx.Render(data, resource)
	default:
		content, err = s.csv.Render(data)
	}
	if err != nil {
		s.logger.Error("render export", zap.String("resource", resource), zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "No se pudo generar el reporte")
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("%s.%s", resource, format),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}

func (s *ExportService) dataset(ctx context.Context, resource string) (export.Dataset, error) {
	switch resource {
	case ResourceDepartments:
		if s.sources.Departments == nil {
			break
		}
		items, err := s.sources.Departments.List(ctx)
		if err != nil {
			return export.Dataset{}, err
		}
		data := export.Dataset{Headers: []string{"ID", "Nombre", "Código"}}
		for _, item := range items {
			data.Rows = append(data.Rows, map[string]string{
				"ID": formatID(item.ID), "Nombre": item.Name, "Código": item.Code,
			})
		}
		return data, nil
	case ResourceMunicipalities:
		if s.sources.Municipalities == nil {
			break
		}
		items, err := s.sources.Municipalities.List(ctx)
		if err != nil {
			return export.Dataset{}, err
		}
		names, err := s.departmentNames(ctx)
		if err != nil {
			return export.Dataset{}, err
		}
		data := export.Dataset{Headers: []string{"ID", "Nombre", "Código", "ID Departamento", "Departamento"}}
		for _, item := range items {
			data.Rows = append(data.Rows, map[string]string{
				"ID": formatID(item.ID), "Nombre": item.Name, "Código": item.Code,
				"ID Departamento": formatID(item.DepartmentID), "Departamento": names[item.DepartmentID],
			})
		}
		return data, nil
	case ResourceSchools:
		if s.sources.Schools == nil {
			break
		}
		items, err := s.sources.Schools.List(ctx)
		if err != nil {
			return export.Dataset{}, err
		}
		names, err := s.municipalityNames(ctx)
		if err != nil {
			return export.Dataset{}, err
		}
		data := export.Dataset{Headers: []string{"ID", "Nombre", "Código", "ID Municipio", "Municipio"}}
		for _, item := range items {
			data.Rows = append(data.Rows, map[string]string{
				"ID": formatID(item.ID), "Nombre": item.Name, "Código": item.Code,
				"ID Municipio": formatID(item.MunicipalityID), "Municipio": names[item.MunicipalityID],
			})
		}
		return data, nil
	case ResourceSites:
		if s.sources.Sites == nil {
			break
		}
		items, err := s.sources.Sites.List(ctx)
		if err != nil {
			return export.Dataset{}, err
		}
		names, err := s.schoolNames(ctx)
		if err != nil {
			return export.Dataset{}, err
		}
		data := export.Dataset{Headers: []string{"ID", "Nombre", "Código", "ID Colegio", "Colegio"}}
		for _, item := range items {
			data.Rows = append(data.Rows, map[string]string{
				"ID": formatID(item.ID), "Nombre": item.Name, "Código": item.Code,
				"ID Colegio": formatID(item.SchoolID), "Colegio": names[item.SchoolID],
			})
		}
		return data, nil
	case ResourceUsers:
		if s.sources.Users == nil {
			break
		}
		items, err := s.sources.Users.List(ctx)
		if err != nil {
			return export.Dataset{}, err
		}
		data := export.Dataset{Headers: []string{"ID", "Nombre", "Rol"}}
		for _, item := range items {
			data.Rows = append(data.Rows, map[string]string{
				"ID": formatID(item.ID), "Nombre": item.Name, "Rol": item.Role.Label(),
			})
		}
		return data, nil
	}
	return export.Dataset{}, appErrors.NotFound("Recurso no encontrado")
}

// Parent name lookups. A missing source or a dangling reference leaves the name empty.

func (s *ExportService) departmentNames(ctx context.Context) (map[int64]string, error) {
	names := make(map[int64]string)
	if s.sources.Departments == nil {
		return names, nil
	}
	items, err := s.sources.Departments.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		names[item.ID] = item.Name
	}
	return names, nil
}

func (s *ExportService) municipalityNames(ctx context.Context) (map[int64]string, error) {
	names := make(map[int64]string)
	if s.sources.Municipalities == nil {
		return names, nil
	}
	items, err := s.sources.Municipalities.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		names[item.ID] = item.Name
	}
	return names, nil
}

func (s *ExportService) schoolNames(ctx context.Context) (map[int64]string, error) {
	names := make(map[int64]string)
	if s.sources.Schools == nil {
		return names, nil
	}
	items, err := s.sources.Schools.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		names[item.ID] = item.Name
	}
	return names, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
