package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"shiftswap/backend/internal/model"
	"shiftswap/backend/internal/repository"
)

// ExportService 数据导出服务
type ExportService interface {
	// ExportSwaps 导出换班申请为 Excel，status 为空时导出全部
	ExportSwaps(ctx context.Context, status string) (*bytes.Buffer, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建导出服务
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

const exportBatchSize = 500

var swapExportHeaders = []string{
	"申请编号", "申请人", "换班对象", "状态", "是否跨部门", "申请原因",
	"截止时间", "执行时间", "创建时间",
}

func (s *exportService) ExportSwaps(ctx context.Context, status string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("关闭 Excel 文件失败", zap.Error(err))
		}
	}()

	const sheet = "Sheet1"
	for i, header := range swapExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(swapExportHeaders), 1)
		_ = f.SetCellStyle(sheet, "A1", endCell, headerStyle)
	}

	row := 2
	offset := 0
	for {
		swaps, _, err := s.repo.SwapRequest.ListAll(ctx, status, offset, exportBatchSize)
		if err != nil {
			return nil, err
		}
		if len(swaps) == 0 {
			break
		}
		for _, swap := range swaps {
			if err := s.writeSwapRow(f, sheet, row, swap); err != nil {
				return nil, err
			}
			row++
		}
		if len(swaps) < exportBatchSize {
			break
		}
		offset += exportBatchSize
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("生成 Excel 失败: %w", err)
	}
	return buf, nil
}

func (s *exportService) writeSwapRow(f *excelize.File, sheet string, row int, swap *model.SwapRequest) error {
	requestorName := swap.RequestorID
	if swap.Requestor != nil {
		requestorName = swap.Requestor.Name
	}
	targetName := swap.TargetID
	if swap.Target != nil {
		targetName = swap.Target.Name
	}
	crossDept := "否"
	if swap.RequiresCrossApproval {
		crossDept = "是"
	}
	executedAt := ""
	if swap.ExecutedAt != nil {
		executedAt = swap.ExecutedAt.Format("2006-01-02 15:04")
	}

	values := []interface{}{
		swap.SwapRequestID,
		requestorName,
		targetName,
		swap.Status,
		crossDept,
		swap.Reason,
		swap.ExpiresAt.Format("2006-01-02 15:04"),
		executedAt,
		swap.CreatedAt.Format("2006-01-02 15:04"),
	}
	for i, value := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
