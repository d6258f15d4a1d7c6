package entities

import "strings"

type SensorType string

const (
	SensorTemperature    SensorType = "Temperature"
	SensorHumidity       SensorType = "Humidity"
	SensorRainfall       SensorType = "Rainfall"
	SensorSolarRadiation SensorType = "SolarRadiation"
	SensorSoilMoisture   SensorType = "SoilMoisture"
	SensorSoilN          SensorType = "SoilN"
	SensorSoilP          SensorType = "SoilP"
	SensorSoilK          SensorType = "SoilK"
	SensorSoilPH         SensorType = "SoilPH"
	SensorChlorophyll    SensorType = "Chlorophyll"
	SensorCustom         SensorType = "Custom"
)

var sensorTypes = []SensorType{
	SensorTemperature, SensorHumidity, SensorRainfall, SensorSolarRadiation,
	SensorSoilMoisture, SensorSoilN, SensorSoilP, SensorSoilK, SensorSoilPH,
	SensorChlorophyll, SensorCustom,
}

func (t SensorType) Valid() bool {
	for _, v := range sensorTypes {
		if t == v {
			return true
		}
	}
	return false
}

func SensorTypes() []SensorType { return sensorTypes }

type ActionType string

const (
	ActionIrrigation    ActionType = "Irrigation"
	ActionFertilization ActionType = "Fertilization"
	ActionPesticide     ActionType = "Pesticide"
	ActionHarvesting    ActionType = "Harvesting"
	ActionPlanting      ActionType = "Planting"
)

func (t ActionType) Valid() bool {
	switch t {
	case ActionIrrigation, ActionFertilization, ActionPesticide, ActionHarvesting, ActionPlanting:
		return true
	}
	return false
}

type RecommendationStatus string

const (
	StatusPending     RecommendationStatus = "Pending"
	StatusAccepted    RecommendationStatus = "Accepted"
	StatusRejected    RecommendationStatus = "Rejected"
	StatusImplemented RecommendationStatus = "Implemented"
)

func (s RecommendationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusImplemented:
		return true
	}
	return false
}

type PredictionType string

const (
	PredictionYield      PredictionType = "yield"
	PredictionIrrigation PredictionType = "irrigation"
)

func (t PredictionType) Valid() bool {
	return t == PredictionYield || t == PredictionIrrigation
}

type GrowthStage string

const (
	StageSeedling   GrowthStage = "Seedling"
	StageVegetative GrowthStage = "Vegetative"
	StageBudding    GrowthStage = "Budding"
	StageFlowering  GrowthStage = "Flowering"
	StageFruiting   GrowthStage = "Fruiting"
	StageMature     GrowthStage = "Mature"
	StageHarvested  GrowthStage = "Harvested"
)

var growthStages = []GrowthStage{
	StageSeedling, StageVegetative, StageBudding, StageFlowering,
	StageFruiting, StageMature, StageHarvested,
}

func (s GrowthStage) Valid() bool {
	for _, v := range growthStages {
		if s == v {
			return true
		}
	}
	return false
}

// ParseGrowthStage maps free-text stage names (e.g. from CSV uploads) onto the
// closed set, case-insensitively.
func ParseGrowthStage(s string) (GrowthStage, bool) {
	for _, v := range growthStages {
		if strings.EqualFold(s, string(v)) {
			return v, true
		}
	}
	return "", false
}
