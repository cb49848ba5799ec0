package service

import (
	"fmt"

	"flight-scheduler-backend/internal/repository"
)

// StatisticsService handles aggregate reporting over flights
type StatisticsService struct {
	repo repository.StatisticsRepositoryInterface
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(repo repository.StatisticsRepositoryInterface) *StatisticsService {
	return &StatisticsService{repo: repo}
}

// DestinationStatResponse reports the most common destination
type DestinationStatResponse struct {
	Destination string `json:"destination"`
	Count       int64  `json:"count"`
}

// AircraftTypeStatResponse reports the most common aircraft type
type AircraftTypeStatResponse struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// FlightStatisticsResponse represents the flight statistics report. The
// aggregate fields are null when no flights exist.
type FlightStatisticsResponse struct {
	TotalFlights           int64                     `json:"total_flights"`
	MostCommonDestination  *DestinationStatResponse  `json:"most_common_destination"`
	MostCommonAircraftType *AircraftTypeStatResponse `json:"most_common_aircraft_type"`
}

// GetFlightStatistics computes the flight statistics report
func (s *StatisticsService) GetFlightStatistics() (*FlightStatisticsResponse, error) {
	total, err := s.repo.CountFlights()
	if err != nil {
		return nil, fmt.Errorf("failed to count flights: %w", err)
	}

	response := &FlightStatisticsResponse{
		TotalFlights: total,
	}
	if total == 0 {
		return response, nil
	}

	destination, err := s.repo.MostCommonDestination()
	if err != nil {
		return nil, fmt.Errorf("failed to get most common destination: %w", err)
	}
	if destination != nil {
		response.MostCommonDestination = &DestinationStatResponse{
			Destination: destination.Destination,
			Count:       destination.Count,
		}
	}

	aircraftType, err := s.repo.MostCommonAircraftType()
	if err != nil {
		return nil, fmt.Errorf("failed to get most common aircraft type: %w", err)
	}
	if aircraftType != nil {
		response.MostCommonAircraftType = &AircraftTypeStatResponse{
			Type:  aircraftType.Type,
			Count: aircraftType.Count,
		}
	}

	return response, nil
}
