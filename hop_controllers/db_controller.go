package hop_controllers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

type DatabaseController struct {
	db    *sql.DB
	table string
}

func NewDatabaseController(username, password, db_host, db_port, db_name, table string) (*DatabaseController, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", username, password, db_host, db_port, db_name)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	dbController := DatabaseController{db: db, table: table}

	return &dbController, nil
}

func (dc *DatabaseController) CloseDb() error {
	return dc.db.Close()
}

func (dc *DatabaseController) insertIntoDB(config ExperimentSettings, session SessionData, startTime time.Time, endTime time.Time) {
	if dc.db == nil {
		return
	}

	lettersJSON, err := json.Marshal(config.Letters)
	if err != nil {
		fmt.Println(fmt.Errorf("failed to marshal letters: %v", err))
	}

	probeJSON, err := json.Marshal(session.Probe)
	if err != nil {
		fmt.Println(fmt.Errorf("failed to marshal probe: %v", err))
	}

	finalStateJSON, err := json.Marshal(session.FinalState)
	if err != nil {
		fmt.Println(fmt.Errorf("failed to marshal final state: %v", err))
	}

	energyTraceJSON, err := json.Marshal(session.EnergyTrace)
	if err != nil {
		fmt.Println(fmt.Errorf("failed to marshal energy trace: %v", err))
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = os.Getenv("HOSTNAME")
	}

	query := fmt.Sprintf("INSERT INTO %s (run_id, host, seed, program_version, letters, n, k, noise_level, schedule, noise_mode, target_letter, predicted_letter, start_time, end_time, status, passes, bit_accuracy, exact_match, probe, final_state, energy_trace) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", dc.table)
	_, err = dc.db.Exec(query,
		uuid.NewString(),
		hostname,
		session.Seed,
		runtime.Version(),
		string(lettersJSON),
		config.N,
		config.K,
		config.NoiseLevel,
		config.Schedule,
		config.NoiseMode,
		session.TargetLetter,
		session.PredictedLetter,
		startTime.Format("2006-01-02 15:04:05"),
		endTime.Format("2006-01-02 15:04:05"),
		session.Status,
		session.Passes,
		session.BitAccuracy,
		session.ExactMatch,
		string(probeJSON),
		string(finalStateJSON),
		string(energyTraceJSON))
	if err != nil {
		fmt.Println(fmt.Errorf("failed to insert data into MySQL: %v", err))
	}
}

func (dc *DatabaseController) FetchFullTableAsJSON() (string, error) {
	rows, err := dc.db.Query(fmt.Sprintf("SELECT * FROM %s", dc.table))
	if err != nil {
		return "", fmt.Errorf("error retrieving data: %v", err)
	}
	defer rows.Close()

	var results []map[string]interface{}

	columns, err := rows.Columns()
	if err != nil {
		return "", fmt.Errorf("error getting columns: %v", err)
	}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePointers := make([]interface{}, len(columns))
		for i := range values {
			valuePointers[i] = &values[i]
		}

		if err := rows.Scan(valuePointers...); err != nil {
			return "", fmt.Errorf("error scanning row: %v", err)
		}

		rowMap := make(map[string]interface{})
		for i, col := range columns {
			var v interface{}
			val := values[i]

			// Convert []byte to string for readability
			b, ok := val.([]byte)
			if ok {
				v = string(b)
			} else {
				v = val
			}

			rowMap[col] = v
		}

		results = append(results, rowMap)
	}

	jsonData, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling results to JSON: %v", err)
	}

	return string(jsonData), nil
}

// QueryAccuracySurface groups converged sessions by two axes and returns
// min/max/avg bit accuracy and pass counts for each cell.
func (dc *DatabaseController) QueryAccuracySurface(X string, Y string, schedule string, noiseMode string) ([][]interface{}, error) {
	queryBody := fmt.Sprintf(`MIN(bit_accuracy), MAX(bit_accuracy), AVG(bit_accuracy),
                  	MIN(passes), MAX(passes), AVG(passes)
            		FROM %s
            		WHERE status = 'FINISHED'
					AND schedule = '%s'
					AND noise_mode = '%s'`, dc.table, schedule, noiseMode)
	query := fmt.Sprintf("SELECT %s, %s, %s GROUP BY %s, %s;", X, Y, queryBody, X, Y)
	rows, err := dc.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var graphData [][]interface{}

	graphData = append(graphData, []interface{}{"X", "Y", "accuracy_min", "accuracy_max", "accuracy_avg", "passes_min", "passes_max", "passes_avg"})

	for rows.Next() {
		var x, y string
		var accuracyMin, accuracyMax, accuracyAvg float64
		var passesMin, passesMax, passesAvg float64
		err := rows.Scan(&x, &y, &accuracyMin, &accuracyMax, &accuracyAvg, &passesMin, &passesMax, &passesAvg)
		if err != nil {
			return nil, err
		}

		graphData = append(graphData, []interface{}{x, y, accuracyMin, accuracyMax, accuracyAvg, passesMin, passesMax, passesAvg})
	}

	return graphData, nil
}

// QueryFinishedCount retrieves the count of converged rows and total rows
// grouped by schedule, noise mode and noise level.
func (dc *DatabaseController) QueryFinishedCount() ([]FinishedCountData, error) {
	fmt.Println("Querying session count to DB...")
	query := fmt.Sprintf(`
        SELECT
            schedule,
            noise_mode,
            CAST(noise_level AS CHAR) AS noise_group,
            COUNT(CASE WHEN status = 'FINISHED' THEN 1 END) AS finished_count,
            COUNT(*) AS total_count
        FROM
            %s
        GROUP BY
            schedule, noise_mode, noise_group;
    `, dc.table)

	rows, err := dc.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []FinishedCountData

	for rows.Next() {
		var data FinishedCountData
		err := rows.Scan(&data.Schedule, &data.NoiseMode, &data.NoiseGroup, &data.FinishedCount, &data.TotalCount)
		if err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}

// GetSessionsByLetters aggregates all sessions trained on a specific
// pattern set.
func (dc *DatabaseController) GetSessionsByLetters(letters []string) (*AccuracyAvgsAndCounts, error) {
	quoted := make([]string, len(letters))
	for i, letter := range letters {
		quoted[i] = fmt.Sprintf("%q", letter)
	}
	jsonLetters := fmt.Sprintf("[%s]", strings.Join(quoted, ","))
	query := fmt.Sprintf(`
        SELECT
            COALESCE(AVG(bit_accuracy), 0) AS avg_bit_accuracy,
            COALESCE(AVG(passes), 0) AS avg_passes,
			COUNT(*) AS total_count,
            SUM(CASE WHEN status = 'FINISHED' THEN 1 ELSE 0 END) AS finished_count
		FROM
            %s
        WHERE
			CAST(letters as CHAR) = ?
    `, dc.table)

	result := AccuracyAvgsAndCounts{}
	err := dc.db.QueryRow(query, jsonLetters).Scan(
		&result.AvgBitAccuracy,
		&result.AvgPasses,
		&result.TotalCount,
		&result.FinishedCount,
	)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %v", err)
	}

	return &result, nil
}

func (dc *DatabaseController) ValidateGraphAxis(axis string) bool {

	availableAxis := []string{"N", "K", "NOISE_LEVEL", "PASSES"}
	for _, item := range availableAxis {
		if item == axis {
			return true
		}
	}
	return false
}

func (dc *DatabaseController) ValidateSchedule(schedule string) bool {

	availableSchedules := []string{"SYNCHRONOUS", "ASYNCHRONOUS"}
	for _, item := range availableSchedules {
		if item == schedule {
			return true
		}
	}
	return false
}

func (dc *DatabaseController) ValidateNoiseMode(mode string) bool {

	availableModes := []string{"FLIP", "REROLL"}
	for _, item := range availableModes {
		if item == mode {
			return true
		}
	}
	return false
}
