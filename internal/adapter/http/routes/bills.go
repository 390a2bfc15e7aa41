package routes

import (
	"packtrack/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBills   = "/bills"
	PathReports = "/reports"
)

func addBillRoutes(rg *gin.RouterGroup, billHandler *handlers.BillHandler, bulkHandler *handlers.BulkHandler, reportHandler *handlers.ReportHandler) {
	bills := rg.Group(PathBills)
	{
		bills.POST("/scan", billHandler.ScanBill)
		bills.POST("", billHandler.QuickAdd)
		bills.GET("", billHandler.ListToday)
		bills.GET("/backlog", billHandler.ListBacklog)
		bills.GET("/:id", billHandler.GetBill)
		bills.PATCH("/:id", billHandler.UpdateBill)
		bills.DELETE("/:id", billHandler.DeleteBill)

		bills.POST("/bulk/pack", bulkHandler.PackSelected)
		bills.POST("/bulk/retag", bulkHandler.RetagSelected)
		bills.POST("/bulk/delete", bulkHandler.DeleteSelected)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/export", reportHandler.ExportCSV)
	}

	rg.GET("/status", billHandler.Status)
}
