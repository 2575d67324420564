// Package reports renders dashboard data into exportable reports.
package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
)

// Report types.
const (
	TypeFull      = "full"
	TypeMetrics   = "metrics"
	TypeChannels  = "channels"
	TypeCampaigns = "campaigns"
)

// KeyMetrics are the headline dashboard figures.
type KeyMetrics struct {
	TotalRevenue     float64
	TotalSpend       float64
	ROAS             float64
	TotalConversions int
}

// ChannelRow is one channel line in the report.
type ChannelRow struct {
	Name        string
	Spend       float64
	Revenue     float64
	Conversions int
	ROI         float64
}

// CampaignRow is one campaign line in the report.
type CampaignRow struct {
	Name    string
	Channel string
	Status  string
	Budget  float64
	Spent   float64
	Leads   int
}

// DashboardData is the input for report generation.
type DashboardData struct {
	Metrics   KeyMetrics
	Channels  []ChannelRow
	Campaigns []CampaignRow
}

// Generator renders dashboard reports.
type Generator struct {
	productName string
	now         func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{productName: "Marketing Intelligence", now: time.Now}
}

// GenerateCSV renders the dashboard as CSV. reportType selects which
// sections are included; unknown types produce only the header.
func (g *Generator) GenerateCSV(data DashboardData, reportType string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{g.productName + " Report"},
		{"Generated: " + g.now().Format("2006-01-02 15:04:05")},
		{},
	}

	if reportType == TypeFull || reportType == TypeMetrics {
		rows = append(rows,
			[]string{"KEY METRICS"},
			[]string{"Metric", "Value"},
			[]string{"Total Revenue", money(data.Metrics.TotalRevenue)},
			[]string{"Total Spend", money(data.Metrics.TotalSpend)},
			[]string{"ROAS", fmt.Sprintf("%.2fx", data.Metrics.ROAS)},
			[]string{"Total Conversions", strconv.Itoa(data.Metrics.TotalConversions)},
			[]string{},
		)
	}

	if reportType == TypeFull || reportType == TypeChannels {
		rows = append(rows,
			[]string{"CHANNEL PERFORMANCE"},
			[]string{"Channel", "Spend", "Revenue", "Conversions", "ROI %"},
		)
		for _, c := range data.Channels {
			rows = append(rows, []string{
				c.Name,
				money(c.Spend),
				money(c.Revenue),
				strconv.Itoa(c.Conversions),
				fmt.Sprintf("%.1f%%", c.ROI),
			})
		}
		rows = append(rows, []string{})
	}

	if reportType == TypeFull || reportType == TypeCampaigns {
		rows = append(rows,
			[]string{"CAMPAIGN PERFORMANCE"},
			[]string{"Campaign", "Channel", "Status", "Budget", "Spent", "Leads"},
		)
		for _, c := range data.Campaigns {
			rows = append(rows, []string{
				c.Name,
				c.Channel,
				c.Status,
				money(c.Budget),
				money(c.Spent),
				strconv.Itoa(c.Leads),
			})
		}
	}

	if err := w.WriteAll(rows); err != nil {
		return "", err
	}
	w.Flush()
	return buf.String(), w.Error()
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
