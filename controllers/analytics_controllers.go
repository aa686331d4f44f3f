package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flavourhaven/hotel-restaurant-app/models"
	"github.com/flavourhaven/hotel-restaurant-app/utils"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type dailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type popularItem struct {
	Name         string `json:"name"`
	TotalOrdered int    `json:"total_ordered"`
}

// GetDashboard assembles the admin rollups: counts, paid revenue,
// orders by status, a 7-day revenue series and the top five items by
// ordered quantity (no status filter, cancelled orders included).
func (ac *AnalyticsController) GetDashboard(c *gin.Context) {
	var stats struct {
		TotalOrders    int64          `json:"total_orders"`
		PendingOrders  int64          `json:"pending_orders"`
		TotalCustomers int64          `json:"total_customers"`
		TotalStaff     int64          `json:"total_staff"`
		TotalMenuItems int64          `json:"total_menu_items"`
		TotalRevenue   float64        `json:"total_revenue"`
		RecentOrders   []models.Order `json:"recent_orders"`
		OrdersByStatus []statusCount  `json:"orders_by_status"`
		DailyRevenue   []dailyRevenue `json:"daily_revenue"`
		PopularItems   []popularItem  `json:"popular_items"`
	}

	ac.DB.Model(&models.Order{}).Count(&stats.TotalOrders)
	ac.DB.Model(&models.Order{}).
		Where("status IN ?", []string{models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusPreparing}).
		Count(&stats.PendingOrders)
	ac.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&stats.TotalCustomers)
	ac.DB.Model(&models.User{}).Where("role = ?", models.RoleStaff).Count(&stats.TotalStaff)
	ac.DB.Model(&models.MenuItem{}).Count(&stats.TotalMenuItems)

	ac.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentStatusPaid).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&stats.TotalRevenue)

	ac.DB.Preload("Customer").
		Order("created_at desc").
		Limit(10).
		Find(&stats.RecentOrders)

	ac.DB.Model(&models.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&stats.OrdersByStatus)

	stats.DailyRevenue = ac.revenueLastDays(7)

	ac.DB.Model(&models.OrderItem{}).
		Select("name, SUM(quantity) as total_ordered").
		Group("name").
		Order("total_ordered desc").
		Limit(5).
		Scan(&stats.PopularItems)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}

// GetRevenueChart renders the 7-day revenue series as a PNG bar chart.
func (ac *AnalyticsController) GetRevenueChart(c *gin.Context) {
	series := ac.revenueLastDays(7)

	byDate := make(map[string]float64, len(series))
	for _, point := range series {
		byDate[point.Date] = point.Revenue
	}

	// One bar per calendar day, zero-filled where nothing was paid.
	labels := make([]string, 0, 7)
	values := make([]float64, 0, 7)
	for i := 6; i >= 0; i-- {
		day := time.Now().AddDate(0, 0, -i).Format("2006-01-02")
		labels = append(labels, day)
		values = append(values, byDate[day])
	}

	png, err := utils.RenderRevenueChart(labels, values)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (ac *AnalyticsController) revenueLastDays(days int) []dailyRevenue {
	since := time.Now().AddDate(0, 0, -days)

	var series []dailyRevenue
	ac.DB.Model(&models.Payment{}).
		Select("DATE(paid_at) as date, SUM(amount) as revenue").
		Where("status = ? AND paid_at >= ?", models.PaymentStatusPaid, since).
		Group("DATE(paid_at)").
		Order("date asc").
		Scan(&series)
	return series
}
