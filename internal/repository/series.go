package repository

import "database/sql"

func scanSeries(rows *sql.Rows) ([]DailySeriesPoint, error) {
	var results []DailySeriesPoint
	for rows.Next() {
		var point DailySeriesPoint
		if err := rows.Scan(&point.Date, &point.Value); err != nil {
			return nil, err
		}
		results = append(results, point)
	}
	return results, nil
}
