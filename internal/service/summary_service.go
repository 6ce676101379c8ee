package service

import (
	"errors"
	"time"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/internal/repository"
	"go-dairy-ops/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SummaryService computes derived views on demand. Nothing here is cached or
// persisted: every call re-reads the ledgers, so a late correction shows up on
// the next query.
type SummaryService interface {
	GetDailySummary(sellerID uuid.UUID, date time.Time) (*model.DailySummary, error)
	GetLocationStatistics(date time.Time) ([]model.LocationStats, error)
	GetManagerDashboard(managerID uuid.UUID) (*ManagerDashboard, error)
	GetSalesTrend(days int) ([]repository.DailySeriesPoint, error)
}

// ManagerDashboard is the last-7-days series plus today's headline numbers
type ManagerDashboard struct {
	Labels         []string          `json:"labels"`
	MilkReceived   []decimal.Decimal `json:"milk_received"`
	Expenses       []decimal.Decimal `json:"expenses"`
	LeftoverSales  []decimal.Decimal `json:"leftover_sales"`
	TotalEmployees int64             `json:"total_employees"`
	TotalLocations int64             `json:"total_locations"`
	TodayMilk      decimal.Decimal   `json:"today_milk"`
	TodayExpenses  decimal.Decimal   `json:"today_expenses"`
}

type summaryService struct {
	receiptRepo    repository.MilkReceiptRepository
	saleRepo       repository.SaleRepository
	dailyTotalRepo repository.DailyTotalRepository
	borrowLendRepo repository.BorrowLendRepository
	sellerRepo     repository.SellerRepository
	locationRepo   repository.LocationRepository
	employeeRepo   repository.EmployeeRepository
	opsRepo        repository.OperationsRepository
}

func NewSummaryService(
	receiptRepo repository.MilkReceiptRepository,
	saleRepo repository.SaleRepository,
	dailyTotalRepo repository.DailyTotalRepository,
	borrowLendRepo repository.BorrowLendRepository,
	sellerRepo repository.SellerRepository,
	locationRepo repository.LocationRepository,
	employeeRepo repository.EmployeeRepository,
	opsRepo repository.OperationsRepository,
) SummaryService {
	return &summaryService{
		receiptRepo:    receiptRepo,
		saleRepo:       saleRepo,
		dailyTotalRepo: dailyTotalRepo,
		borrowLendRepo: borrowLendRepo,
		sellerRepo:     sellerRepo,
		locationRepo:   locationRepo,
		employeeRepo:   employeeRepo,
		opsRepo:        opsRepo,
	}
}

func (s *summaryService) GetDailySummary(sellerID uuid.UUID, date time.Time) (*model.DailySummary, error) {
	if _, err := s.sellerRepo.FindByID(sellerID); err != nil {
		return nil, apperr.NotFound("seller not found")
	}

	totalReceived, err := s.receiptRepo.SumReceived(sellerID, date)
	if err != nil {
		return nil, err
	}
	farmMilk, err := s.receiptRepo.SumReceivedBySource(sellerID, date, model.SourceFarm)
	if err != nil {
		return nil, err
	}
	interSellerMilk, err := s.receiptRepo.SumReceivedBySource(sellerID, date, model.SourceInterSeller)
	if err != nil {
		return nil, err
	}

	totalSold, err := s.saleRepo.SumQuantity(sellerID, date)
	if err != nil {
		return nil, err
	}

	totalLent, err := s.borrowLendRepo.SumUnsettledLent(sellerID, &date)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.ListBySellerDate(sellerID, date)
	if err != nil {
		return nil, err
	}
	saleResponses := make([]model.SaleResponse, 0, len(sales))
	for i := range sales {
		saleResponses = append(saleResponses, sales[i].ToResponse())
	}

	summary := &model.DailySummary{
		Date:              model.FormatDate(date),
		TotalMilkReceived: totalReceived,
		FarmMilk:          farmMilk,
		InterSellerMilk:   interSellerMilk,
		TotalMilkSold:     totalSold,
		TotalMilkLent:     totalLent,
		// May go negative on over-entry of sales; surfaced as-is
		RemainingMilk:   totalReceived.Sub(totalSold),
		IndividualSales: saleResponses,
	}

	total, err := s.dailyTotalRepo.Find(sellerID, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if total != nil {
		summary.CashSales = total.CashSales
		summary.OnlineSales = total.OnlineSales
	}
	// Revenue is always cash + online, never an independent figure
	summary.Revenue = summary.CashSales.Add(summary.OnlineSales)

	return summary, nil
}

func (s *summaryService) GetLocationStatistics(date time.Time) ([]model.LocationStats, error) {
	locations, err := s.locationRepo.FindAll()
	if err != nil {
		return nil, err
	}

	farm := model.SourceFarm
	interSeller := model.SourceInterSeller

	stats := make([]model.LocationStats, 0, len(locations))
	for _, location := range locations {
		sellerCount, err := s.sellerRepo.CountActiveByLocation(location.ID)
		if err != nil {
			return nil, err
		}
		totalMilk, err := s.receiptRepo.SumByLocation(location.ID, date, nil)
		if err != nil {
			return nil, err
		}
		farmMilk, err := s.receiptRepo.SumByLocation(location.ID, date, &farm)
		if err != nil {
			return nil, err
		}
		interMilk, err := s.receiptRepo.SumByLocation(location.ID, date, &interSeller)
		if err != nil {
			return nil, err
		}

		stats = append(stats, model.LocationStats{
			LocationID:        location.ID.String(),
			LocationName:      location.Name,
			Address:           location.Address,
			SellerCount:       sellerCount,
			MilkReceivedToday: totalMilk,
			FarmMilkToday:     farmMilk,
			InterSellerToday:  interMilk,
		})
	}
	return stats, nil
}

func (s *summaryService) GetManagerDashboard(managerID uuid.UUID) (*ManagerDashboard, error) {
	today := model.Today()
	start := today.AddDate(0, 0, -6)

	milkSeries, err := s.receiptRepo.DailySeries(start, today)
	if err != nil {
		return nil, err
	}
	expenseSeries, err := s.opsRepo.ExpenseSeries(managerID, start, today)
	if err != nil {
		return nil, err
	}
	leftoverSeries, err := s.opsRepo.LeftoverSalesSeries(managerID, start, today)
	if err != nil {
		return nil, err
	}

	milkByDate := seriesMap(milkSeries)
	expensesByDate := seriesMap(expenseSeries)
	leftoverByDate := seriesMap(leftoverSeries)

	dashboard := &ManagerDashboard{}
	for i := 0; i < 7; i++ {
		label := model.FormatDate(start.AddDate(0, 0, i))
		dashboard.Labels = append(dashboard.Labels, label)
		dashboard.MilkReceived = append(dashboard.MilkReceived, milkByDate[label])
		dashboard.Expenses = append(dashboard.Expenses, expensesByDate[label])
		dashboard.LeftoverSales = append(dashboard.LeftoverSales, leftoverByDate[label])
	}

	employees, err := s.employeeRepo.CountActiveByManager(managerID)
	if err != nil {
		return nil, err
	}
	locations, err := s.locationRepo.FindAll()
	if err != nil {
		return nil, err
	}

	dashboard.TotalEmployees = employees
	dashboard.TotalLocations = int64(len(locations))
	dashboard.TodayMilk = milkByDate[model.FormatDate(today)]
	dashboard.TodayExpenses = expensesByDate[model.FormatDate(today)]

	return dashboard, nil
}

func (s *summaryService) GetSalesTrend(days int) ([]repository.DailySeriesPoint, error) {
	if days <= 0 {
		days = 30
	}
	today := model.Today()
	return s.dailyTotalRepo.RevenueSeries(today.AddDate(0, 0, -days), today)
}

// seriesMap indexes a date-bucketed series by its normalized YYYY-MM-DD label
func seriesMap(points []repository.DailySeriesPoint) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(points))
	for _, point := range points {
		label := point.Date
		if len(label) > len(model.DateLayout) {
			label = label[:len(model.DateLayout)]
		}
		m[label] = point.Value
	}
	return m
}
