// internals/features/payroll/summaries/controller/payroll_controller.go
package controller

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	arepo "klinikku_backend/internals/features/attendance/attendance/repository"
	srepo "klinikku_backend/internals/features/lembaga/org_settings/repository"
	"klinikku_backend/internals/features/payroll/summaries/service"
	strepo "klinikku_backend/internals/features/users/staff/repository"
	helper "klinikku_backend/internals/helpers"
	helperauth "klinikku_backend/internals/helpers/auth"
)

var validate = validator.New()

type periodQuery struct {
	Start string `query:"start" validate:"required,datetime=2006-01-02"`
	End   string `query:"end" validate:"required,datetime=2006-01-02"`
}

type PayrollController struct {
	Settings *srepo.OrgSettingRepository
	Service  *service.PayrollService
}

func NewPayrollController(db *gorm.DB) *PayrollController {
	return &PayrollController{
		Settings: srepo.NewOrgSettingRepository(db),
		Service: &service.PayrollService{
			Attendance: arepo.NewAttendanceRepository(db),
			Staff:      strepo.NewStaffRepository(db),
		},
	}
}

// GET /api/a/payroll/summary?start=&end=
func (ctl *PayrollController) Summary(c *fiber.Ctx) error {
	summary, err := ctl.buildSummary(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", summary)
}

// GET /api/a/payroll/export?start=&end= — unduh XLSX
func (ctl *PayrollController) Export(c *fiber.Ctx) error {
	summary, err := ctl.buildSummary(c)
	if err != nil {
		return err
	}

	f, err := ctl.Service.ExportXLSX(summary)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat file XLSX")
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menulis file XLSX")
	}

	filename := fmt.Sprintf("payroll_%s_%s.xlsx",
		summary.PeriodStart.Format("20060102"), summary.PeriodEnd.Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.SendStream(buf)
}

func (ctl *PayrollController) buildSummary(c *fiber.Ctx) (*service.PeriodSummary, error) {
	orgID, err := helperauth.GetOrgUUID(c)
	if err != nil {
		return nil, helper.FromFiberError(c, err)
	}

	var q periodQuery
	if err := c.QueryParser(&q); err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validate.Struct(q); err != nil {
		return nil, helper.ValidationError(c, err)
	}
	start, _ := time.Parse("2006-01-02", q.Start)
	end, _ := time.Parse("2006-01-02", q.End)
	if end.Before(start) {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Tanggal selesai sebelum tanggal mulai")
	}

	settings, err := ctl.Settings.Get(c.Context(), orgID)
	if err != nil {
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kebijakan organisasi")
	}

	summary, err := ctl.Service.BuildPeriodSummary(c.Context(), orgID, settings, start, end)
	if err != nil {
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Gagal merekap payroll")
	}
	return summary, nil
}
