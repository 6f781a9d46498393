package orderControllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/nikhitha4605/storefront-api/auth"
)

// GET /admin/orders/export — all orders as an Excel workbook.
func ExportOrdersToExcel(identities *auth.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := allOrders(identities)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderID", "UserID", "Items", "Subtotal", "Shipping", "Tax", "Total",
			"Status", "PaymentMethod", "City", "PostalCode", "CreatedAt", "DeliveryDate",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.UserID)
			items := 0
			for _, l := range o.Items {
				items += l.Quantity
			}
			row.AddCell().SetValue(items)
			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.ShippingCost)
			row.AddCell().SetValue(o.Tax)
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(o.ShippingAddress.City)
			row.AddCell().SetValue(o.ShippingAddress.PostalCode)
			row.AddCell().SetValue(o.CreatedAt.Format(time.RFC3339))
			row.AddCell().SetValue(o.DeliveryDate)
		}

		filename := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("2006-01-02"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", "attachment; filename="+filename)
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
