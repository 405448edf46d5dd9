package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/internal/partition"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/filestorage"
)

type AttachmentServiceInterface interface {
	ActaPath(ctx context.Context, tag string) (string, error)
	SaveActa(ctx context.Context, tag string, file io.Reader, fileName string) (string, error)
	HojaVida(ctx context.Context, tag string) (fileName string, data []byte, err error)
}

// AttachmentService resuelve el registro por service tag y entrega sus
// adjuntos: el acta de entrega en disco y la hoja de vida en bytes.
type AttachmentService struct {
	store    repositories.Store
	resolver ResolverServiceInterface
	files    filestorage.FileStorageInterface
	logger   *zap.Logger
}

func NewAttachmentService(
	store repositories.Store,
	resolver ResolverServiceInterface,
	files filestorage.FileStorageInterface,
	logger *zap.Logger,
) *AttachmentService {
	return &AttachmentService{
		store:    store,
		resolver: resolver,
		files:    files,
		logger:   logger,
	}
}

func (s *AttachmentService) ActaPath(ctx context.Context, tag string) (string, error) {
	rec, p, err := s.resolver.FindByServiceTag(ctx, tag, partition.LookupOrder)
	if err != nil {
		return "", err
	}
	if !rec.RutaActa.Valid || rec.RutaActa.String == "" {
		return "", apperrors.NewHttpError(http.StatusNotFound,
			"el equipo no tiene acta registrada", apperrors.ErrNotFound,
			map[string]interface{}{"particion": p.Table()})
	}

	fullPath, err := s.files.Open(rec.RutaActa.String)
	if err != nil {
		s.logger.Warn("acta registrada pero ausente en disco",
			zap.String("servicio_cpu", tag),
			zap.String("ruta_acta", rec.RutaActa.String),
			zap.Error(err),
		)
		return "", apperrors.NewHttpError(http.StatusNotFound,
			"el archivo del acta no está disponible", err, nil)
	}
	return fullPath, nil
}

func (s *AttachmentService) SaveActa(ctx context.Context, tag string, file io.Reader, fileName string) (string, error) {
	rec, p, err := s.resolver.FindByServiceTag(ctx, tag, partition.LookupOrder)
	if err != nil {
		return "", err
	}

	ruta, err := s.files.Save(file, fileName, "actas")
	if err != nil {
		return "", err
	}
	if err := s.store.SetRutaActa(ctx, p, rec.ID, ruta); err != nil {
		return "", err
	}

	s.logger.Info("acta registrada",
		zap.String("servicio_cpu", tag),
		zap.String("particion", p.Table()),
		zap.String("ruta_acta", ruta),
	)
	return ruta, nil
}

func (s *AttachmentService) HojaVida(ctx context.Context, tag string) (string, []byte, error) {
	rec, _, err := s.resolver.FindByServiceTag(ctx, tag, partition.LookupOrder)
	if err != nil {
		return "", nil, err
	}

	fileName := fmt.Sprintf("hoja_vida_%s.xlsx", tag)
	if rec.HojaVida.Valid && len(rec.HojaVida.Bytes) > 0 {
		return fileName, rec.HojaVida.Bytes, nil
	}

	// Sin adjunto guardado: se genera una hoja de vida base con la
	// identidad del equipo.
	data, err := buildHojaVidaTemplate(rec)
	if err != nil {
		return "", nil, err
	}
	return fileName, data, nil
}

func buildHojaVidaTemplate(rec *entities.Equipment) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Hoja de Vida"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	cells := [][2]string{
		{"A1", "HOJA DE VIDA DE EQUIPO"},
		{"A3", "Tipo"}, {"B3", rec.Tipo},
		{"A4", "Marca CPU"}, {"B4", rec.MarcaCPU},
		{"A5", "Referencia CPU"}, {"B5", rec.ReferenciaCPU},
		{"A6", "Serial de servicio"}, {"B6", rec.ServicioCPU},
		{"A7", "Placa"}, {"B7", rec.PlacaCPU},
		{"A8", "Marca monitor"}, {"B8", rec.MarcaMonitor.String},
		{"A9", "Serial monitor"}, {"B9", rec.ServicioMonitor.String},
		{"A11", "Fecha de acta"}, {"B11", rec.Acta.Fecha()},
	}
	for _, c := range cells {
		if err := f.SetCellValue(sheet, c[0], c[1]); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
