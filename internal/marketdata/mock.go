package marketdata

import (
	"time"

	"ReadinessScanner/internal/model"
)

// MockProvider returns controllable fixed data for development and testing.
type MockProvider struct {
	Histories  map[Timeframe][]model.OHLCV
	HistoryErr map[Timeframe]error
	Chain      *model.OptionChain
	Info       *FundamentalsInfo
	InfoErr    error
	Earnings   []float64
	Class      model.AssetClass
	SectorName string
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) GetHistory(_ string, tf Timeframe) ([]model.OHLCV, error) {
	if err := m.HistoryErr[tf]; err != nil {
		return nil, err
	}
	if bars, ok := m.Histories[tf]; ok {
		return bars, nil
	}
	return GenerateBars(100, 120), nil
}

func (m *MockProvider) GetNearestExpiryChain(_ string) (*model.OptionChain, error) {
	return m.Chain, nil
}

func (m *MockProvider) GetInfo(_ string) (*FundamentalsInfo, error) {
	if m.InfoErr != nil {
		return nil, m.InfoErr
	}
	if m.Info != nil {
		return m.Info, nil
	}
	return &FundamentalsInfo{}, nil
}

func (m *MockProvider) GetQuarterlyEarnings(_ string) ([]float64, error) {
	return m.Earnings, nil
}

func (m *MockProvider) Classify(_ string) model.AssetClass {
	if m.Class == "" {
		return model.AssetEquity
	}
	return m.Class
}

func (m *MockProvider) Sector(_ string, _ model.AssetClass) string {
	if m.SectorName == "" {
		return "Unknown"
	}
	return m.SectorName
}

// GenerateBars produces a gently trending synthetic daily series.
func GenerateBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
