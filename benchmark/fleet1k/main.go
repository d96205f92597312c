package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxAircraft int = 1000
var httpHostPort string = "127.0.0.1:5000"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var componentTypes = []string{"engine", "landing_gear", "hydraulic_system"}

func main() {
	aircraftIDs := make([]string, maxAircraft)
	for i := 0; i < maxAircraft; i++ {
		aircraftIDs[i] = "AC-" + uuid.NewString()
	}
	fmt.Printf("generated %v aircraft IDs\n", maxAircraft)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxAircraft; i++ {
		wg.Add(1)
		i := i
		go func() {
			registerAircraft(aircraftIDs[i])
			fmt.Printf("\rregistered aircraft %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v aircraft: used time=%v seconds, throughput=%v action/second\n",
		maxAircraft, usedTime.Seconds(), float64(maxAircraft)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxAircraft; i++ {
		wg.Add(1)
		i := i
		go func() {
			doAction(aircraftIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v aircraft: used time=%v seconds, throughput=%v action/second\n",
		maxAircraft, usedTime.Seconds(), float64(maxAircraft*3)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func rndComponent() string {
	return componentTypes[rnd.Int31n(int32(len(componentTypes)))]
}

func registerAircraft(aircraftID string) {
	payload := map[string]any{
		"aircraft_id":  aircraftID,
		"model":        "A320neo",
		"manufacturer": "Airbus",
	}

	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/api/aircraft", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
}

func doAction(aircraftID string) {
	actions := []func(){
		genPostSensorDataAction(aircraftID),
		genGetAlertsAction(),
		genGetHealthAction(aircraftID),
	}
	actionNames := []string{
		"PostSensorData",
		"GetAlerts",
		"GetHealth",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for aircraft %v", actionNames[index], aircraftID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genPostSensorDataAction(aircraftID string) func() {
	return func() {
		payload := map[string]any{
			"aircraft_id":     aircraftID,
			"component_type":  rndComponent(),
			"vibration_level": rndFloat64(0.0, 10.0, 2),
			"temperature":     rndFloat64(200.0, 700.0, 2),
			"pressure":        rndFloat64(10.0, 50.0, 2),
			"wear_level":      rndFloat64(0.0, 100.0, 2),
			"oil_quality":     rndFloat64(0.0, 100.0, 2),
			"health_score":    rndFloat64(0.0, 100.0, 2),
			"timestamp":       time.Now().Format(time.RFC3339),
		}

		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/api/sensors/data", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
	}
}

func genGetAlertsAction() func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/alerts", httpHostPort))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genGetHealthAction(aircraftID string) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/aircraft/%s/health", httpHostPort, aircraftID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
