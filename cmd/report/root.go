package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-tempo-api/infrastructure/sheet"
	"github.com/vfg2006/sales-tempo-api/internal/config"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
	"github.com/vfg2006/sales-tempo-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-tempo-api/internal/usecases/pacing"
	"github.com/vfg2006/sales-tempo-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-tempo-api/pkg/log"
	"github.com/vfg2006/sales-tempo-api/pkg/utils"
)

// options são as flags comuns a todos os subcomandos
type options struct {
	xlsxPath      string
	sheetName     string
	referencePath string
	timezone      string
	office        string
	now           string
	logLevel      string
	warning       float64
	critical      float64
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "report",
		Short:         "Relatórios de vendas e ritmo a partir de uma exportação xlsx",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Setup(opts.logLevel)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.xlsxPath, "xlsx", "reports.xlsx", "exportação xlsx da planilha de relatórios")
	flags.StringVar(&opts.sheetName, "sheet", "Reports", "aba com os relatórios diários")
	flags.StringVar(&opts.referencePath, "reference", "reference.yaml", "arquivo com escritórios, feriados e planos")
	flags.StringVar(&opts.timezone, "timezone", "Europe/Moscow", "fuso usado para o dia de hoje")
	flags.StringVar(&opts.office, "office", "", "filtra por escritório")
	flags.StringVar(&opts.now, "now", "", "data usada como hoje, útil para reprocessar")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "nível de log")
	flags.Float64Var(&opts.warning, "warning", pacing.DefaultThresholds.Warning, "limite de aviso em %")
	flags.Float64Var(&opts.critical, "critical", pacing.DefaultThresholds.Critical, "limite crítico em %")

	root.AddCommand(
		newSummaryCommand(opts),
		newCompareCommand(opts),
		newOfficesCommand(opts),
		newSeriesCommand(opts),
		newDiagnoseCommand(opts),
		newTempoCommand(opts),
		newPacingCommand(opts),
		newTokenCommand(),
	)

	return root
}

// service monta o relatório sobre o xlsx e o arquivo de referência
func (o *options) service() (*reporting.Service, error) {
	location, err := time.LoadLocation(o.timezone)
	if err != nil {
		return nil, fmt.Errorf("fuso horário inválido %q: %w", o.timezone, err)
	}

	ref, err := config.LoadReference(o.referencePath)
	if err != nil {
		return nil, err
	}
	store := reporting.NewReferenceStore(ref)

	serviceOpts := []reporting.Option{reporting.WithSourceName(config.RecordSourceXLSX)}
	if o.now != "" {
		today, err := utils.ParseDate(o.now)
		if err != nil {
			return nil, fmt.Errorf("--now: %w", err)
		}
		fixed := time.Date(today.Year(), today.Month(), today.Day(), 12, 0, 0, 0, location)
		serviceOpts = append(serviceOpts, reporting.WithClock(func() time.Time { return fixed }))
	}

	return reporting.NewService(
		sheet.NewReader(o.xlsxPath, o.sheetName),
		reporting.NewStaticPlans(store),
		store,
		aggregating.NewService(),
		pacing.NewEngine(pacing.Thresholds{Warning: o.warning, Critical: o.critical}),
		location,
		serviceOpts...,
	), nil
}

// period resolve o tipo do argumento com as datas opcionais de --start e --end
func period(service reporting.Reporter, kind, start, end string) (domain.Period, error) {
	dates := make([]*domain.Date, 0, 2)
	for _, value := range []string{start, end} {
		if value == "" {
			dates = append(dates, nil)
			continue
		}
		parsed, err := utils.ParseDate(value)
		if err != nil {
			return domain.Period{}, err
		}
		date := domain.DateOf(parsed)
		dates = append(dates, &date)
	}

	return service.ResolvePeriod(domain.PeriodKind(kind), dates[0], dates[1])
}

// target lê --date; sem data vale o dia de hoje do relatório
func target(service reporting.Reporter, value string) (domain.Date, error) {
	if value == "" {
		return service.Today(), nil
	}
	parsed, err := utils.ParseDate(value)
	if err != nil {
		return domain.Date{}, err
	}
	return domain.DateOf(parsed), nil
}

func printJSON(w io.Writer, payload any) error {
	_, err := fmt.Fprintln(w, utils.PrettyJson(payload))
	return err
}
