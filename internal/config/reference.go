package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-tempo-api/internal/calendar"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
	"github.com/vfg2006/sales-tempo-api/pkg/log"
)

// ReferenceData são os dados de referência carregados do arquivo: escritórios,
// feriados e planos mensais estáticos. Não deve ser alterado depois de carregado.
type ReferenceData struct {
	Headquarters string
	Offices      []string
	Holidays     calendar.HolidayTable
	Plans        domain.PlanTable
	Calendar     *calendar.WorkingDayCalendar
}

// HasOffice informa se o escritório está na lista oficial
func (r *ReferenceData) HasOffice(office string) bool {
	for _, o := range r.Offices {
		if o == office {
			return true
		}
	}
	return false
}

// O viper deixa as chaves de mapa em minúsculas, por isso os planos vêm em lista
type referenceFile struct {
	Offices struct {
		Headquarters string   `mapstructure:"headquarters"`
		List         []string `mapstructure:"list"`
	} `mapstructure:"offices"`
	Holidays map[string][]string `mapstructure:"holidays"`
	Plans    []struct {
		Manager string             `mapstructure:"manager"`
		Targets map[string]float64 `mapstructure:"targets"`
	} `mapstructure:"plans"`
}

// LoadReference lê o arquivo de referência (yaml, json ou toml pela extensão)
func LoadReference(path string) (*ReferenceData, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "falha ao ler arquivo de referência %s", path)
	}

	return decodeReference(v)
}

// WatchReference carrega o arquivo e passa a observá-lo. A cada alteração
// válida onChange recebe os dados novos; alterações inválidas são logadas e
// os dados anteriores continuam valendo.
func WatchReference(path string, onChange func(*ReferenceData)) (*ReferenceData, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "falha ao ler arquivo de referência %s", path)
	}

	data, err := decodeReference(v)
	if err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		logger := log.L.WithFields(log.Fields{"reference_path": e.Name, "operation": e.Op.String()})

		updated, err := decodeReference(v)
		if err != nil {
			logger.WithError(err).Error("Arquivo de referência inválido, mantendo a versão anterior")
			return
		}

		logger.Infof("Arquivo de referência recarregado: %d escritórios, %d planos", len(updated.Offices), len(updated.Plans))
		onChange(updated)
	})
	v.WatchConfig()

	return data, nil
}

func decodeReference(v *viper.Viper) (*ReferenceData, error) {
	var file referenceFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, errors.Wrap(err, "falha ao decodificar arquivo de referência")
	}

	return buildReference(file)
}

func buildReference(file referenceFile) (*ReferenceData, error) {
	hq := strings.TrimSpace(file.Offices.Headquarters)

	offices := make([]string, 0, len(file.Offices.List))
	seen := make(map[string]bool, len(file.Offices.List))
	for _, office := range file.Offices.List {
		office = strings.TrimSpace(office)
		if office == "" || office == hq || seen[office] {
			continue
		}
		seen[office] = true
		offices = append(offices, office)
	}
	sort.Strings(offices)

	holidays := make(calendar.HolidayTable, len(file.Holidays))
	for yearKey, dates := range file.Holidays {
		year, err := strconv.Atoi(strings.TrimSpace(yearKey))
		if err != nil {
			return nil, fmt.Errorf("ano de feriado inválido %q", yearKey)
		}

		for _, raw := range dates {
			d, err := domain.ParseISODate(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("feriado inválido %q: %w", raw, err)
			}
			if d.Year != year {
				return nil, fmt.Errorf("feriado %s listado no ano %d", d, year)
			}
			holidays[year] = append(holidays[year], d)
		}
	}

	plans := make(domain.PlanTable, len(file.Plans))
	for _, entry := range file.Plans {
		manager := strings.TrimSpace(entry.Manager)
		if manager == "" {
			return nil, errors.New("plano sem gerente")
		}

		plan := make(domain.MonthlyPlan, len(entry.Targets))
		for key, value := range entry.Targets {
			plan[strings.ToLower(strings.TrimSpace(key))] = value
		}
		plans[manager] = plan
	}

	return &ReferenceData{
		Headquarters: hq,
		Offices:      offices,
		Holidays:     holidays,
		Plans:        plans,
		Calendar:     calendar.NewWorkingDayCalendar(holidays),
	}, nil
}
