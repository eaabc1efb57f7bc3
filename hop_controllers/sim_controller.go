package hop_controllers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/beevik/ntp"
	"github.com/sourcegraph/conc/pool"
)

type SimulationController struct {
	RecallController   RecallController
	DatabaseController DatabaseController
}

// Function to read and deserialize the sweep settings file
func (s *SimulationController) LoadSimulationSettings(filename string) (*SimulationSettings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var settings SimulationSettings
	err = json.Unmarshal(data, &settings)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return &settings, nil
}

// SimulateOnStart sweeps the cartesian product of pattern sets, schedules,
// noise modes and noise levels, running MaxSessionCount recall sessions per
// configuration under a bounded worker pool.
func (s *SimulationController) SimulateOnStart(sessionMap *SessionMap) {

	simSettings, err := s.LoadSimulationSettings("simulation_settings.json")
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}

	fmt.Println("Settings loaded:")
	fmt.Println(simSettings)

	workerPool := pool.New().WithMaxGoroutines(simSettings.MaxWorkerCount)
	for _, letters := range simSettings.PatternSets {
		for _, schedule := range simSettings.Schedules {
			for _, noiseMode := range simSettings.NoiseModes {
				for _, noiseLevel := range simSettings.NoiseLevels {
					expSettings, err := s.RecallController.SettingsFactory(letters, noiseLevel, simSettings.MaxPasses, schedule, noiseMode)
					if err != nil {
						continue
					}

					workerPool.Go(func() {
						startTime, ntpErr := s.getCurrentTimeFromNTP()
						if ntpErr != nil {
							startTime = time.Now()
						}
						token := s.generateToken(startTime, expSettings)
						sessionBufferSize := 10
						sessionChannel := make(chan SessionStateMessage, sessionBufferSize)
						simulationData := OpenSession{
							Uid:                 token,
							Config:              expSettings,
							StartTime:           startTime,
							MaxSessionCount:     simSettings.MaxSessionCount,
							CurrentSessionCount: 0,
							CurrentStateChannel: sessionChannel,
						}
						sessionMap.Mutex.Lock()
						sessionMap.Sessions[token] = &simulationData
						sessionMap.Mutex.Unlock()

						for i := 0; i < simSettings.MaxSessionCount; i++ {
							startTime, ntpErr = s.getCurrentTimeFromNTP()
							if ntpErr != nil {
								startTime = time.Now()
							}
							seed := time.Now().UnixNano()
							localRand := rand.New(rand.NewSource(seed))
							session := s.RecallController.StartRecallSession(expSettings, sessionChannel, seed, localRand)

							endTime, ntpErr := s.getCurrentTimeFromNTP()
							if ntpErr != nil {
								endTime = time.Now()
							}
							s.DatabaseController.insertIntoDB(expSettings, session, startTime, endTime)
							sessionMap.Mutex.Lock()
							sessionMap.Sessions[token].CurrentSessionCount += 1
							sessionMap.Mutex.Unlock()
						}

						sessionMap.Mutex.Lock()
						delete(sessionMap.Sessions, token)
						sessionMap.Mutex.Unlock()
						close(sessionChannel)
					})
				}
			}
		}
	}
	workerPool.Wait()
	fmt.Println("-- All automatic configs finished --")
}

func (s *SimulationController) getCurrentTimeFromNTP() (time.Time, error) {
	ntpServer := "0.pool.ntp.org"
	time, err := ntp.Time(ntpServer)
	if err != nil {
		return time, fmt.Errorf("failed to get time from NTP server: %v", err)
	}
	return time, nil
}

func (s *SimulationController) generateToken(startTime time.Time, config ExperimentSettings) string {
	idStamp := fmt.Sprintf("%v%f%s%s%s", config.Letters, config.NoiseLevel, config.Schedule, config.NoiseMode, startTime)
	h := sha256.New()
	h.Write([]byte(idStamp))
	token := hex.EncodeToString(h.Sum(nil))
	return token
}
