package adaptor

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"bite-reviews/internal/data/entity"
	"bite-reviews/internal/usecase"
	"bite-reviews/pkg/utils"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var exportHeaders = []string{"ID", "Restaurant", "Review", "Rating", "Created At"}

type ExportHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewExportHandler(service usecase.ReviewService, log *zap.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		log:     log.With(zap.String("handler", "export")),
	}
}

// ExportReviews handles GET /api/admin/reviews/export?format=xlsx|csv (admin)
func (h *ExportHandler) ExportReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.AllReviews(r.Context())
	if err != nil {
		h.log.Error("Failed to load reviews for export", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to export reviews")
		return
	}

	switch r.URL.Query().Get("format") {
	case "csv":
		h.writeCSV(w, reviews)
	default:
		h.writeXLSX(w, reviews)
	}
}

func (h *ExportHandler) writeCSV(w http.ResponseWriter, reviews []*entity.Review) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="reviews_%s.csv"`, time.Now().Format("20060102")))

	// UTF-8 BOM so spreadsheet apps detect the encoding
	w.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, review := range reviews {
		writer.Write([]string{
			review.ID.String(),
			review.RestaurantName,
			review.ReviewText,
			strconv.Itoa(review.Rating),
			review.CreatedAt.Format(time.RFC3339),
		})
	}

	h.log.Info("Reviews exported", zap.String("format", "csv"), zap.Int("count", len(reviews)))
}

func (h *ExportHandler) writeXLSX(w http.ResponseWriter, reviews []*entity.Review) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Reviews"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		h.log.Error("Failed to create export sheet", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to export reviews")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx, review := range reviews {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), review.ID.String())
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), review.RestaurantName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), review.ReviewText)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), review.Rating)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), review.CreatedAt.Format(time.RFC3339))
	}

	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="reviews_%s.xlsx"`, time.Now().Format("20060102")))

	if err := f.Write(w); err != nil {
		h.log.Error("Failed to write export workbook", zap.Error(err))
		return
	}

	h.log.Info("Reviews exported", zap.String("format", "xlsx"), zap.Int("count", len(reviews)))
}
