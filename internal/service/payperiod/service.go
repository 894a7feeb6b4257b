package payperiod

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paylinehq/payroll-engine-go/internal/domain/attendance"
	"github.com/paylinehq/payroll-engine-go/internal/domain/compensation"
	"github.com/paylinehq/payroll-engine-go/internal/domain/employee"
	"github.com/paylinehq/payroll-engine-go/internal/domain/payperiod"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/calendar"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/database"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type PayPeriodServiceImpl struct {
	tx             database.TxManager
	periodRepo     payperiod.PayPeriodRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	ruleRepo       compensation.RuleRepository
}

func NewPayPeriodService(
	tx database.TxManager,
	periodRepo payperiod.PayPeriodRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	ruleRepo compensation.RuleRepository,
) payperiod.PayPeriodService {
	return &PayPeriodServiceImpl{
		tx:             tx,
		periodRepo:     periodRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		ruleRepo:       ruleRepo,
	}
}

// defaultSchedule applies when an employee's branch carries no schedule.
var defaultSchedule = employee.Branch{
	WorkingDaysPerWeek: 5,
	HoursPerDay:        decimal.NewFromInt(8),
}

// ========== PERIOD CRUD ==========

func (s *PayPeriodServiceImpl) CreatePeriod(ctx context.Context, req payperiod.CreatePeriodRequest) (payperiod.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payperiod.PeriodResponse{}, err
	}

	month, _ := validator.IsValidMonth(req.ReferenceMonth)

	_, err := s.periodRepo.GetByMonth(ctx, month)
	if err == nil {
		return payperiod.PeriodResponse{}, payperiod.ErrPeriodExists
	}
	if !errors.Is(err, payperiod.ErrPeriodNotFound) {
		return payperiod.PeriodResponse{}, err
	}

	created, err := s.periodRepo.Create(ctx, payperiod.PayPeriod{
		ReferenceMonth: month,
		Status:         payperiod.StatusOpen,
		Notes:          req.Notes,
		GrossTotal:     decimal.Zero,
		DiscountTotal:  decimal.Zero,
		NetTotal:       decimal.Zero,
		TotalsStale:    true,
	})
	if err != nil {
		return payperiod.PeriodResponse{}, err
	}

	return mapPeriodResponse(created), nil
}

func (s *PayPeriodServiceImpl) ListPeriods(ctx context.Context) ([]payperiod.PeriodResponse, error) {
	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]payperiod.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, mapPeriodResponse(p))
	}
	return result, nil
}

// ========== ENROLLMENT ==========

func (s *PayPeriodServiceImpl) Enroll(ctx context.Context, periodID string) (payperiod.EnrollResult, error) {
	var result payperiod.EnrollResult

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.periodRepo.GetForUpdate(ctx, periodID)
		if err != nil {
			return err
		}
		if p.Status != payperiod.StatusOpen {
			return payperiod.ErrPeriodLocked
		}

		employees, err := s.employeeRepo.ListActive(ctx)
		if err != nil {
			return err
		}
		lines, err := s.periodRepo.ListLines(ctx, p.ID)
		if err != nil {
			return err
		}

		enrolled := make(map[string]bool, len(lines))
		for _, line := range lines {
			enrolled[line.EmployeeID] = true
		}

		created := 0
		for _, emp := range employees {
			if enrolled[emp.ID] {
				continue
			}
			_, err := s.periodRepo.CreateLine(ctx, payperiod.PayLine{
				PayPeriodID:         p.ID,
				EmployeeID:          emp.ID,
				BaseWage:            decimal.Zero,
				HoursWorked:         decimal.Zero,
				OvertimeHours:       decimal.Zero,
				AttendanceDeduction: decimal.Zero,
				BenefitsTotal:       decimal.Zero,
				DiscountsTotal:      decimal.Zero,
				Gross:               decimal.Zero,
				Net:                 decimal.Zero,
			})
			if err != nil {
				return err
			}
			created++
		}

		if created > 0 {
			if err := s.periodRepo.MarkTotalsStale(ctx, p.ID); err != nil {
				return err
			}
			p.TotalsStale = true
		}

		result = payperiod.EnrollResult{
			Period:        mapPeriodResponse(p),
			LinesCreated:  created,
			LinesExisting: len(lines),
		}
		return nil
	})

	return result, err
}

// ========== RECOMPUTATION ==========

func (s *PayPeriodServiceImpl) RecomputeAll(ctx context.Context, periodID string) (payperiod.RecomputeResult, error) {
	var result payperiod.RecomputeResult

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.periodRepo.GetForUpdate(ctx, periodID)
		if err != nil {
			return err
		}
		if p.Status != payperiod.StatusOpen {
			return payperiod.ErrPeriodLocked
		}

		updated, err := s.recomputeLocked(ctx, &p)
		if err != nil {
			return err
		}

		result = payperiod.RecomputeResult{
			Period:       mapPeriodResponse(p),
			LinesUpdated: updated,
		}
		return nil
	})

	return result, err
}

// recomputeLocked recomputes every line and writes fresh totals. The caller
// must hold the period lock. Totals are written only after every line result
// is in, so a concurrent reader never observes partial sums.
func (s *PayPeriodServiceImpl) recomputeLocked(ctx context.Context, p *payperiod.PayPeriod) (int, error) {
	lines, err := s.periodRepo.ListLines(ctx, p.ID)
	if err != nil {
		return 0, err
	}

	inputs, err := s.gatherInputs(ctx, *p, lines)
	if err != nil {
		return 0, err
	}

	// Line computation is pure, so it fans out across employees. The Wait
	// below is the barrier: no total is derived from a partial batch.
	results := make([]LineResult, len(inputs))
	g, _ := errgroup.WithContext(ctx)
	for i, in := range inputs {
		g.Go(func() error {
			results[i] = ComputeLine(in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	grossTotal := decimal.Zero
	discountTotal := decimal.Zero
	netTotal := decimal.Zero

	for i, line := range lines {
		res := results[i]
		line.BaseWage = res.BaseWage
		line.WorkingDays = res.WorkingDays
		line.DaysWorked = res.DaysWorked
		line.HoursWorked = res.HoursWorked
		line.OvertimeHours = res.OvertimeHours
		line.AttendanceDeduction = res.AttendanceDeduction
		line.BenefitsTotal = res.BenefitsTotal
		line.DiscountsTotal = res.DiscountsTotal
		line.Gross = res.Gross
		line.Net = res.Net

		autoLines := make([]payperiod.AppliedLine, 0, len(res.AutoLines))
		for _, al := range res.AutoLines {
			autoLines = append(autoLines, payperiod.AppliedLine{
				PayLineID:     line.ID,
				RuleID:        al.RuleID,
				ComputedValue: al.ComputedValue,
				Manual:        false,
			})
		}

		if err := s.periodRepo.SaveLineComputation(ctx, line, autoLines); err != nil {
			return 0, err
		}

		grossTotal = grossTotal.Add(res.Gross)
		discountTotal = discountTotal.Add(res.DiscountsTotal)
		netTotal = netTotal.Add(res.Net)
	}

	p.EmployeeCount = len(lines)
	p.GrossTotal = grossTotal
	p.DiscountTotal = discountTotal
	p.NetTotal = netTotal
	p.TotalsStale = false

	if err := s.periodRepo.SaveTotals(ctx, *p); err != nil {
		return 0, err
	}
	return len(lines), nil
}

// gatherInputs performs the batch read for a set of lines: wages, schedules,
// attendance counts, the auto-apply rule catalog and existing manual lines.
func (s *PayPeriodServiceImpl) gatherInputs(ctx context.Context, p payperiod.PayPeriod, lines []payperiod.PayLine) ([]LineInput, error) {
	start := calendar.MonthStart(p.ReferenceMonth)
	end := calendar.MonthEnd(p.ReferenceMonth)

	autoBenefits, err := s.ruleRepo.ListAutoApply(ctx, compensation.RuleKindBenefit)
	if err != nil {
		return nil, err
	}
	autoDiscounts, err := s.ruleRepo.ListAutoApply(ctx, compensation.RuleKindDiscount)
	if err != nil {
		return nil, err
	}

	branches := make(map[string]employee.Branch)
	inputs := make([]LineInput, 0, len(lines))

	for _, line := range lines {
		emp, err := s.employeeRepo.GetByID(ctx, line.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("gather inputs for employee %s: %w", line.EmployeeID, err)
		}

		schedule, ok := branches[emp.BranchID]
		if !ok {
			branch, err := s.employeeRepo.GetBranch(ctx, emp.BranchID)
			switch {
			case err == nil:
				schedule = branch
			case errors.Is(err, employee.ErrBranchNotFound):
				schedule = defaultSchedule
			default:
				return nil, err
			}
			branches[emp.BranchID] = schedule
		}

		baseWage := decimal.Zero
		wage, err := s.employeeRepo.GetActiveWage(ctx, line.EmployeeID)
		switch {
		case err == nil:
			baseWage = wage.Value
		case errors.Is(err, employee.ErrNoActiveWage):
			// Surfaced as a validation warning, never an abort.
		default:
			return nil, err
		}

		deducting, err := s.attendanceRepo.CountDeducting(ctx, line.EmployeeID, start, end)
		if err != nil {
			return nil, err
		}
		records, err := s.attendanceRepo.CountRecords(ctx, line.EmployeeID, start, end)
		if err != nil {
			return nil, err
		}
		overtime, err := s.attendanceRepo.SumOvertimeHours(ctx, line.EmployeeID, start, end)
		if err != nil {
			return nil, err
		}

		applied, err := s.periodRepo.ListAppliedLines(ctx, line.ID)
		if err != nil {
			return nil, err
		}
		var manual []payperiod.AppliedLine
		for _, al := range applied {
			if al.Manual {
				manual = append(manual, al)
			}
		}

		inputs = append(inputs, LineInput{
			EmployeeID:        line.EmployeeID,
			BaseWage:          baseWage,
			WorkingDays:       calendar.WorkingDays(p.ReferenceMonth, schedule.WorkingDaysPerWeek),
			DeductingAbsences: deducting,
			AttendanceRecords: records,
			OvertimeHours:     overtime,
			HoursPerDay:       schedule.HoursPerDay,
			AutoBenefits:      autoBenefits,
			AutoDiscounts:     autoDiscounts,
			ManualLines:       manual,
		})
	}

	return inputs, nil
}

// ========== VALIDATION ==========

func (s *PayPeriodServiceImpl) Validate(ctx context.Context, periodID string) (payperiod.ValidationReport, error) {
	p, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return payperiod.ValidationReport{}, err
	}
	lines, err := s.periodRepo.ListLines(ctx, p.ID)
	if err != nil {
		return payperiod.ValidationReport{}, err
	}
	return s.buildReport(ctx, p, lines)
}

// buildReport collects every blocking error and warning in one pass.
func (s *PayPeriodServiceImpl) buildReport(ctx context.Context, p payperiod.PayPeriod, lines []payperiod.PayLine) (payperiod.ValidationReport, error) {
	report := payperiod.ValidationReport{}

	if len(lines) == 0 {
		report.Errors = append(report.Errors, "period has no pay lines; enroll employees first")
	}

	neverComputed := p.TotalsStale && p.EmployeeCount == 0
	if len(lines) > 0 && neverComputed {
		report.Errors = append(report.Errors, "period totals have never been computed")
	}
	if p.TotalsStale && p.EmployeeCount > 0 {
		report.Warnings = append(report.Warnings, "totals are stale since the last line-level edit; recompute before closing")
	}

	start := calendar.MonthStart(p.ReferenceMonth)
	end := calendar.MonthEnd(p.ReferenceMonth)

	for _, line := range lines {
		name := lineDisplayName(line)

		if line.Net.IsNegative() {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s has negative net pay (%s)", name, line.Net.StringFixed(2)))
		}
		if !neverComputed && line.WorkingDays == 0 {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s has zero working days; daily wage was guarded to zero", name))
		}

		records, err := s.attendanceRepo.CountRecords(ctx, line.EmployeeID, start, end)
		if err != nil {
			return payperiod.ValidationReport{}, err
		}
		if records == 0 {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s has no attendance records in the period", name))
		}

		_, err = s.employeeRepo.GetActiveWage(ctx, line.EmployeeID)
		if errors.Is(err, employee.ErrNoActiveWage) {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s has no active wage entry", name))
		} else if err != nil {
			return payperiod.ValidationReport{}, err
		}
	}

	// Active employees not yet enrolled.
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payperiod.ValidationReport{}, err
	}
	enrolled := make(map[string]bool, len(lines))
	for _, line := range lines {
		enrolled[line.EmployeeID] = true
	}
	for _, emp := range employees {
		if !enrolled[emp.ID] {
			report.Warnings = append(report.Warnings, fmt.Sprintf("active employee %s is not enrolled in this period", emp.FullName))
		}
	}

	return report, nil
}

func lineDisplayName(line payperiod.PayLine) string {
	if line.EmployeeName != nil && *line.EmployeeName != "" {
		return *line.EmployeeName
	}
	return "employee " + line.EmployeeID
}

func reportToValidationErrors(report payperiod.ValidationReport) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, e := range report.Errors {
		errs = append(errs, validator.ValidationError{Field: "period", Message: e})
	}
	return errs
}

// ========== LIFECYCLE ==========

func (s *PayPeriodServiceImpl) Close(ctx context.Context, req payperiod.CloseRequest) (payperiod.CloseResult, error) {
	var result payperiod.CloseResult

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.periodRepo.GetForUpdate(ctx, req.PeriodID)
		if err != nil {
			return err
		}
		if p.Status != payperiod.StatusOpen {
			return &payperiod.StateTransitionError{Current: p.Status, Attempted: payperiod.StatusClosed}
		}

		lines, err := s.periodRepo.ListLines(ctx, p.ID)
		if err != nil {
			return err
		}
		report, err := s.buildReport(ctx, p, lines)
		if err != nil {
			return err
		}
		if !report.Valid() {
			return reportToValidationErrors(report)
		}

		if _, err := s.recomputeLocked(ctx, &p); err != nil {
			return err
		}

		now := time.Now()
		p.Status = payperiod.StatusClosed
		p.CloseDate = &now
		appendAudit(&p, "Closed", req.Note)

		if err := s.periodRepo.UpdateLifecycle(ctx, p); err != nil {
			return err
		}

		result = payperiod.CloseResult{
			Period:   mapPeriodResponse(p),
			Warnings: report.Warnings,
		}
		return nil
	})

	return result, err
}

func (s *PayPeriodServiceImpl) Reopen(ctx context.Context, req payperiod.ReopenRequest) (payperiod.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payperiod.PeriodResponse{}, err
	}

	var result payperiod.PeriodResponse

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.periodRepo.GetForUpdate(ctx, req.PeriodID)
		if err != nil {
			return err
		}
		if p.Status != payperiod.StatusClosed {
			return &payperiod.StateTransitionError{Current: p.Status, Attempted: payperiod.StatusOpen}
		}

		p.Status = payperiod.StatusOpen
		p.CloseDate = nil
		appendAudit(&p, "Reopened", &req.Reason)

		if err := s.periodRepo.UpdateLifecycle(ctx, p); err != nil {
			return err
		}

		result = mapPeriodResponse(p)
		return nil
	})

	return result, err
}

func (s *PayPeriodServiceImpl) MarkPaid(ctx context.Context, req payperiod.MarkPaidRequest) (payperiod.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payperiod.PeriodResponse{}, err
	}

	var result payperiod.PeriodResponse

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.periodRepo.GetForUpdate(ctx, req.PeriodID)
		if err != nil {
			return err
		}
		if p.Status != payperiod.StatusClosed {
			return &payperiod.StateTransitionError{Current: p.Status, Attempted: payperiod.StatusPaid}
		}

		payDate := time.Now()
		if req.PayDate != nil {
			payDate, _ = validator.IsValidDate(*req.PayDate)
		}

		p.Status = payperiod.StatusPaid
		p.PayDate = &payDate
		appendAudit(&p, "Paid", req.Note)

		if err := s.periodRepo.UpdateLifecycle(ctx, p); err != nil {
			return err
		}

		result = mapPeriodResponse(p)
		return nil
	})

	return result, err
}

// ========== MANUAL LINES ==========

func (s *PayPeriodServiceImpl) AddManualLine(ctx context.Context, req payperiod.AddManualLineRequest) (payperiod.PayLineResponse, error) {
	if err := req.Validate(); err != nil {
		return payperiod.PayLineResponse{}, err
	}

	var result payperiod.PayLineResponse

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.periodRepo.GetForUpdate(ctx, req.PeriodID)
		if err != nil {
			return err
		}
		if p.Status != payperiod.StatusOpen {
			return payperiod.ErrPeriodLocked
		}

		line, err := s.periodRepo.GetLine(ctx, p.ID, req.EmployeeID)
		if err != nil {
			return err
		}

		rule, err := s.ruleRepo.GetByCode(ctx, req.RuleCode)
		if err != nil {
			return err
		}
		if !rule.Active {
			return compensation.ErrRuleInactive
		}

		// Manual lines are an explicit decision: the exemption threshold is
		// not consulted, only the rule's value formula.
		value := rule.Amount(rule.BasisValue(line.BaseWage, line.Gross))
		if req.Value != nil {
			value = req.Value.Round(2)
		}

		kind := string(rule.Kind)
		_, err = s.periodRepo.UpsertManualLine(ctx, payperiod.AppliedLine{
			PayLineID:     line.ID,
			RuleID:        rule.ID,
			ComputedValue: value,
			Note:          req.Note,
			Manual:        true,
			RuleCode:      &rule.Code,
			RuleName:      &rule.Name,
			RuleKind:      &kind,
		})
		if err != nil {
			return err
		}

		// Refresh this line so its own totals include the manual value; the
		// period totals go stale until the next full recompute.
		inputs, err := s.gatherInputs(ctx, p, []payperiod.PayLine{line})
		if err != nil {
			return err
		}
		res := ComputeLine(inputs[0])
		line.BaseWage = res.BaseWage
		line.WorkingDays = res.WorkingDays
		line.DaysWorked = res.DaysWorked
		line.HoursWorked = res.HoursWorked
		line.OvertimeHours = res.OvertimeHours
		line.AttendanceDeduction = res.AttendanceDeduction
		line.BenefitsTotal = res.BenefitsTotal
		line.DiscountsTotal = res.DiscountsTotal
		line.Gross = res.Gross
		line.Net = res.Net

		autoLines := make([]payperiod.AppliedLine, 0, len(res.AutoLines))
		for _, al := range res.AutoLines {
			autoLines = append(autoLines, payperiod.AppliedLine{
				PayLineID:     line.ID,
				RuleID:        al.RuleID,
				ComputedValue: al.ComputedValue,
			})
		}
		if err := s.periodRepo.SaveLineComputation(ctx, line, autoLines); err != nil {
			return err
		}
		if err := s.periodRepo.MarkTotalsStale(ctx, p.ID); err != nil {
			return err
		}

		applied, err := s.periodRepo.ListAppliedLines(ctx, line.ID)
		if err != nil {
			return err
		}
		result = mapLineResponse(line, applied)
		return nil
	})

	return result, err
}

// ========== READ PROJECTIONS ==========

func (s *PayPeriodServiceImpl) GetSummary(ctx context.Context, periodID string) (payperiod.PeriodSummaryResponse, error) {
	p, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return payperiod.PeriodSummaryResponse{}, err
	}
	lines, err := s.periodRepo.ListLines(ctx, p.ID)
	if err != nil {
		return payperiod.PeriodSummaryResponse{}, err
	}

	lineResponses := make([]payperiod.PayLineResponse, 0, len(lines))
	for _, line := range lines {
		lineResponses = append(lineResponses, mapLineResponse(line, nil))
	}

	return payperiod.PeriodSummaryResponse{
		ID:             p.ID,
		ReferenceMonth: p.ReferenceMonth.Format("2006-01"),
		Status:         string(p.Status),
		Totals:         mapTotals(p),
		TotalsStale:    p.TotalsStale,
		Lines:          lineResponses,
	}, nil
}

func (s *PayPeriodServiceImpl) GetLine(ctx context.Context, periodID, employeeID string) (payperiod.PayLineResponse, error) {
	line, err := s.periodRepo.GetLine(ctx, periodID, employeeID)
	if err != nil {
		return payperiod.PayLineResponse{}, err
	}
	applied, err := s.periodRepo.ListAppliedLines(ctx, line.ID)
	if err != nil {
		return payperiod.PayLineResponse{}, err
	}
	return mapLineResponse(line, applied), nil
}

// ========== HELPERS ==========

func appendAudit(p *payperiod.PayPeriod, label string, note *string) {
	entry := label
	if note != nil && *note != "" {
		entry = label + ": " + *note
	}
	if p.Notes == nil || *p.Notes == "" {
		p.Notes = &entry
		return
	}
	combined := *p.Notes + "\n" + entry
	p.Notes = &combined
}

func mapTotals(p payperiod.PayPeriod) payperiod.Totals {
	return payperiod.Totals{
		EmployeeCount: p.EmployeeCount,
		GrossTotal:    p.GrossTotal,
		DiscountTotal: p.DiscountTotal,
		NetTotal:      p.NetTotal,
	}
}

func mapPeriodResponse(p payperiod.PayPeriod) payperiod.PeriodResponse {
	var closeDate, payDate *string
	if p.CloseDate != nil {
		str := p.CloseDate.Format("2006-01-02")
		closeDate = &str
	}
	if p.PayDate != nil {
		str := p.PayDate.Format("2006-01-02")
		payDate = &str
	}

	return payperiod.PeriodResponse{
		ID:             p.ID,
		ReferenceMonth: p.ReferenceMonth.Format("2006-01"),
		Status:         string(p.Status),
		CloseDate:      closeDate,
		PayDate:        payDate,
		Notes:          p.Notes,
		Totals:         mapTotals(p),
		TotalsStale:    p.TotalsStale,
	}
}

func mapLineResponse(line payperiod.PayLine, applied []payperiod.AppliedLine) payperiod.PayLineResponse {
	resp := payperiod.PayLineResponse{
		EmployeeID:          line.EmployeeID,
		BaseWage:            line.BaseWage,
		WorkingDays:         line.WorkingDays,
		DaysWorked:          line.DaysWorked,
		HoursWorked:         line.HoursWorked,
		OvertimeHours:       line.OvertimeHours,
		AttendanceDeduction: line.AttendanceDeduction,
		BenefitsTotal:       line.BenefitsTotal,
		DiscountsTotal:      line.DiscountsTotal,
		Gross:               line.Gross,
		Net:                 line.Net,
	}
	if line.EmployeeName != nil {
		resp.EmployeeName = *line.EmployeeName
	}
	if line.EmployeeCode != nil {
		resp.EmployeeCode = *line.EmployeeCode
	}

	for _, al := range applied {
		item := payperiod.AppliedLineResponse{
			ComputedValue: al.ComputedValue,
			Manual:        al.Manual,
			Note:          al.Note,
		}
		if al.RuleCode != nil {
			item.RuleCode = *al.RuleCode
		}
		if al.RuleName != nil {
			item.RuleName = *al.RuleName
		}
		if al.RuleKind != nil {
			item.RuleKind = *al.RuleKind
		}
		resp.AppliedLines = append(resp.AppliedLines, item)
	}

	return resp
}
