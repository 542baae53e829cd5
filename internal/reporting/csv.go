package reporting

import (
	"fmt"
	"math"
	"strings"
)

// RenderRankingCSV renders the scenario ranking as a CSV string.
func RenderRankingCSV(rows []RankingRow) string {
	var sb strings.Builder

	// Header
	sb.WriteString("scenario,probability,value,cost,duration_days,net_value,expected_value,roi,value_per_day\n")

	// Rows
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%s,%.6f,%.2f,%.2f,%d,%.2f,%.2f,%s,%s\n",
			row.Scenario,
			row.Probability,
			row.Value,
			row.Cost,
			row.DurationDays,
			row.NetValue,
			row.ExpectedValue,
			csvRatio(row.ROI),
			csvRatio(row.ValuePerDay),
		))
	}

	return sb.String()
}

// csvRatio keeps the +Inf ROI sentinel readable in CSV output.
func csvRatio(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.6f", v)
}
