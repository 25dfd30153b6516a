package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"rodacerta/frotagest/internal/common"
	"rodacerta/frotagest/internal/constants"
	"rodacerta/frotagest/internal/models/dtos"
	"rodacerta/frotagest/internal/models/entities"
	gormModels "rodacerta/frotagest/internal/models/gorm"
	"rodacerta/frotagest/internal/tire"
)

const consumptionTTL = 15 * time.Minute

// FuelLogRepo is the refueling persistence surface the report needs.
type FuelLogRepo interface {
	ListByVehicleYear(ctx context.Context, vehicleID string, year int) ([]gormModels.FuelLog, error)
}

// ReportService builds the fuel consumption reports. Per-vehicle rows
// aggregate refuelings by month; km/L uses the odometer delta between the
// first and last full-tank refueling of the month.
type ReportService struct {
	fuelLogs FuelLogRepo
	fleet    FleetRepo
	cache    common.CacheInterface
}

func NewReportService(fuelLogs FuelLogRepo, fleet FleetRepo, cache common.CacheInterface) *ReportService {
	return &ReportService{fuelLogs: fuelLogs, fleet: fleet, cache: cache}
}

// VehicleConsumption aggregates one vehicle's refuelings for a year into
// monthly liters, spend and km/L rows.
func (svc *ReportService) VehicleConsumption(ctx context.Context, vehicleID string, year int) (*dtos.VehicleConsumption, error) {
	vehicle, err := svc.fleet.VehicleByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, tire.ErrNotFound) {
			return nil, vehicleNotFound(vehicleID)
		}
		return nil, err
	}

	key := string(constants.CachePrefixConsumption) + vehicleID + "_" + time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006")
	return cachedAs[dtos.VehicleConsumption](svc.cache, key, consumptionTTL, func() (any, error) {
		logs, err := svc.fuelLogs.ListByVehicleYear(ctx, vehicleID, year)
		if err != nil {
			return nil, err
		}
		return buildConsumption(vehicle, year, logs), nil
	})
}

// FleetConsumption builds the per-vehicle reports for every active
// vehicle, fanning the per-vehicle queries out concurrently.
func (svc *ReportService) FleetConsumption(ctx context.Context, year int) ([]dtos.VehicleConsumption, error) {
	vehicles, err := svc.fleet.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}

	var (
		mu  sync.Mutex
		out []dtos.VehicleConsumption
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, v := range vehicles {
		if !v.IsActive {
			continue
		}
		v := v
		g.Go(func() error {
			report, err := svc.VehicleConsumption(gctx, v.ID, year)
			if err != nil {
				return err
			}
			mu.Lock()
			out = append(out, *report)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Plate < out[j].Plate })
	return out, nil
}

func buildConsumption(vehicle *entities.Vehicle, year int, logs []gormModels.FuelLog) *dtos.VehicleConsumption {
	type monthAgg struct {
		liters        float64
		spend         float64
		firstOdometer int64
		lastOdometer  int64
	}
	months := map[time.Month]*monthAgg{}

	for _, log := range logs {
		m := log.Date.Month()
		agg := months[m]
		if agg == nil {
			agg = &monthAgg{firstOdometer: log.Odometer}
			months[m] = agg
		}
		agg.liters += log.Liters
		total := log.Total
		if total == 0 {
			total = log.Liters * log.PricePerLiter
		}
		agg.spend += total
		if log.Odometer > agg.lastOdometer {
			agg.lastOdometer = log.Odometer
		}
		if log.Odometer < agg.firstOdometer {
			agg.firstOdometer = log.Odometer
		}
	}

	report := &dtos.VehicleConsumption{
		VehicleID: vehicle.ID,
		Plate:     vehicle.Plate,
		Year:      year,
	}
	for m := time.January; m <= time.December; m++ {
		agg := months[m]
		if agg == nil {
			continue
		}
		row := dtos.MonthlyConsumption{
			Month:  m,
			Liters: agg.liters,
			Spend:  agg.spend,
			KmRun:  agg.lastOdometer - agg.firstOdometer,
		}
		if agg.liters > 0 {
			row.KmPerLiter = float64(row.KmRun) / agg.liters
		}
		report.Months = append(report.Months, row)
	}
	return report
}
