package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"hopsim/hop_controllers"

	"github.com/joho/godotenv"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

var sessionMap = hop_controllers.NewSessionMap()

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	welcomeMessage := " -  -  Hopfield Lab Control Server  -  - "
	fmt.Println(welcomeMessage)

	dbController, err := hop_controllers.NewDatabaseController(
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_TABLE"))
	if err != nil {
		fmt.Println(err)
		return
	}

	defer dbController.CloseDb()

	simController := hop_controllers.SimulationController{
		RecallController:   hop_controllers.RecallController{},
		DatabaseController: *dbController,
	}

	http.HandleFunc("/sessions", func(w http.ResponseWriter, r *http.Request) {
		listSessionMapHandler(w, r, sessionMap)
	})

	http.HandleFunc("/track-sessions", func(w http.ResponseWriter, r *http.Request) {
		trackAllSessionsHandler(w, r, sessionMap)
	})

	http.HandleFunc("/query-accuracy-graph", func(w http.ResponseWriter, r *http.Request) {
		accuracyGraphHandler(w, r, dbController)
	})

	http.HandleFunc("/sessions-table", func(w http.ResponseWriter, r *http.Request) {
		fullTableHandler(w, r, dbController)
	})

	http.HandleFunc("/finished-counts", func(w http.ResponseWriter, r *http.Request) {
		finishedCountsHandler(w, r, dbController)
	})

	http.HandleFunc("/sessions-by-letters", func(w http.ResponseWriter, r *http.Request) {
		sessionsByLettersHandler(w, r, dbController)
	})

	http.HandleFunc("/events", realTimeSessionHandler)
	http.HandleFunc("/get-config", settingsByUidHandler)
	http.HandleFunc("/status", hostStatusHandler)

	go simController.SimulateOnStart(sessionMap)

	http.ListenAndServe(":8080", nil)

}

func listSessionMapHandler(w http.ResponseWriter, r *http.Request, sessionMap *hop_controllers.SessionMap) {
	sessionMap.Mutex.RLock()
	jsonString, err := json.Marshal(sessionMap.Sessions)
	sessionMap.Mutex.RUnlock()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Fprint(w, string(jsonString))
}

func trackAllSessionsHandler(w http.ResponseWriter, r *http.Request, sessionMap *hop_controllers.SessionMap) {
	// Set http headers required for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// You may need this locally for CORS requests
	w.Header().Set("Access-Control-Allow-Origin", "*")

	clientGone := r.Context().Done()

	rc := http.NewResponseController(w)
	t := time.NewTicker(time.Second * 5)
	defer t.Stop()
	for {
		select {
		case <-clientGone:
			return
		case <-t.C:
			sessionMap.Mutex.RLock()
			jsonString, err := json.Marshal(sessionMap.Sessions)
			sessionMap.Mutex.RUnlock()
			if err != nil {
				fmt.Println(err)
				return
			}

			_, err = fmt.Fprintf(w, "data: %s\n\n", string(jsonString))
			if err != nil {
				return
			}
			err = rc.Flush()
			if err != nil {
				return
			}
		}
	}
}

func realTimeSessionHandler(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("id")
	// Set http headers required for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// You may need this locally for CORS requests
	w.Header().Set("Access-Control-Allow-Origin", "*")

	clientGone := r.Context().Done()

	rc := http.NewResponseController(w)

	var session hop_controllers.OpenSession
	sessionMap.Mutex.Lock()

	sessionPointer, ok := sessionMap.Sessions[id]

	if !ok {
		sessionMap.Mutex.Unlock()
		fmt.Println("Session UID not found: ", id)
		http.NotFound(w, r)
		return
	}

	session = *sessionPointer

	sessionMap.Sessions[session.Uid].Tracking = true
	sessionMap.Mutex.Unlock()

	for {
		select {
		case <-clientGone:
			sessionMap.Mutex.Lock()
			if _, stillOpen := sessionMap.Sessions[session.Uid]; stillOpen {
				sessionMap.Sessions[session.Uid].Tracking = false
			}
			sessionMap.Mutex.Unlock()

			return
		case currentState, open := <-session.CurrentStateChannel:
			if !open {
				return
			}
			parsedState, err := json.Marshal(currentState)
			if err != nil {
				return
			}
			_, err = fmt.Fprintf(w, "data: %s\n\n", parsedState)
			if err != nil {
				return
			}
			err = rc.Flush()
			if err != nil {
				return
			}
		}
	}
}

func settingsByUidHandler(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("id")
	var session hop_controllers.OpenSession
	sessionMap.Mutex.RLock()

	sessionPointer, ok := sessionMap.Sessions[id]

	if !ok {
		sessionMap.Mutex.RUnlock()
		fmt.Println("Session UID not found: ", id)
		http.NotFound(w, r)
		return
	}

	session = *sessionPointer

	sessionMap.Mutex.RUnlock()
	parsedConfig, err := json.Marshal(session.Config)
	if err != nil {
		return
	}
	_, err = fmt.Fprint(w, string(parsedConfig))
	if err != nil {
		fmt.Println("Error while sending sessionConfig")
		return
	}
}

type GraphRequestBody struct {
	X         string `json:"X"`
	Y         string `json:"Y"`
	Schedule  string `json:"Schedule"`
	NoiseMode string `json:"NoiseMode"`
}

func accuracyGraphHandler(w http.ResponseWriter, r *http.Request, dbController *hop_controllers.DatabaseController) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	var requestBody GraphRequestBody
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(&requestBody)
	if err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	axisX := strings.ToUpper(requestBody.X)
	axisY := strings.ToUpper(requestBody.Y)
	schedule := strings.ToUpper(requestBody.Schedule)
	noiseMode := strings.ToUpper(requestBody.NoiseMode)
	fmt.Printf("Received X: %s, Y: %s\n", axisX, axisY)

	validXAxis := dbController.ValidateGraphAxis(axisX)
	validYAxis := dbController.ValidateGraphAxis(axisY)
	if !(validXAxis && validYAxis) {
		fmt.Println("Invalid Axis Requested")
		http.Error(w, "Invalid axis", http.StatusBadRequest)
		return
	}

	validSchedule := dbController.ValidateSchedule(schedule)
	validNoiseMode := dbController.ValidateNoiseMode(noiseMode)

	if !(validSchedule && validNoiseMode) {
		fmt.Println("Invalid Experiment Config")
		http.Error(w, "Invalid experiment config", http.StatusBadRequest)
		return
	}

	response, err := dbController.QueryAccuracySurface(axisX, axisY, schedule, noiseMode)

	if err != nil {
		fmt.Println("Error while querying graph")
		fmt.Println(err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func fullTableHandler(w http.ResponseWriter, r *http.Request, dbController *hop_controllers.DatabaseController) {
	jsonString, err := dbController.FetchFullTableAsJSON()
	if err != nil {
		fmt.Println("Error while dumping sessions table")
		fmt.Println(err)
		http.Error(w, "Failed to fetch table", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, jsonString)
}

func finishedCountsHandler(w http.ResponseWriter, r *http.Request, dbController *hop_controllers.DatabaseController) {
	counts, err := dbController.QueryFinishedCount()
	if err != nil {
		fmt.Println("Error while querying finished counts")
		fmt.Println(err)
		http.Error(w, "Failed to query counts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(counts)
}

func sessionsByLettersHandler(w http.ResponseWriter, r *http.Request, dbController *hop_controllers.DatabaseController) {
	lettersParam := r.FormValue("letters")
	if lettersParam == "" {
		http.Error(w, "Missing letters parameter", http.StatusBadRequest)
		return
	}
	letters := strings.Split(lettersParam, ",")

	result, err := dbController.GetSessionsByLetters(letters)
	if err != nil {
		fmt.Println("Error while querying sessions by letters")
		fmt.Println(err)
		http.Error(w, "Failed to query sessions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func hostStatusHandler(w http.ResponseWriter, r *http.Request) {
	cpuPercent, err := cpu.Percent(0, false)
	if err != nil {
		cpuPercent = []float64{0}
	}
	virtualMemory, err := mem.VirtualMemory()
	if err != nil {
		http.Error(w, "Failed to read host memory", http.StatusInternalServerError)
		return
	}
	hostInfo, err := host.Info()
	if err != nil {
		http.Error(w, "Failed to read host info", http.StatusInternalServerError)
		return
	}

	status := map[string]interface{}{
		"hostname":       hostInfo.Hostname,
		"uptime_seconds": hostInfo.Uptime,
		"cpu_percent":    cpuPercent,
		"memory_used":    virtualMemory.Used,
		"memory_total":   virtualMemory.Total,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}
