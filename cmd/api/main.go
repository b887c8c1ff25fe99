package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tempo-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tempo-api/infrastructure/repository"
	"github.com/vfg2006/sales-tempo-api/infrastructure/sheet"
	"github.com/vfg2006/sales-tempo-api/internal/api"
	"github.com/vfg2006/sales-tempo-api/internal/config"
	"github.com/vfg2006/sales-tempo-api/internal/scheduler"
	"github.com/vfg2006/sales-tempo-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-tempo-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-tempo-api/internal/usecases/pacing"
	"github.com/vfg2006/sales-tempo-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-tempo-api/pkg/log"
	"github.com/vfg2006/sales-tempo-api/pkg/metrics"
)

func main() {
	chdirToSource()
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	referenceStore := loadReference(cfg.Reference)

	// O histórico de alertas sempre usa o PostgreSQL, mesmo com registros em xlsx
	pgConn := pgconn(ctx, cfg.Database)

	var recordSource reporting.RecordSource
	sourceName := cfg.Records.Source
	switch cfg.Records.Source {
	case config.RecordSourceXLSX:
		recordSource = sheet.NewReader(cfg.Records.XLSXPath, cfg.Records.XLSXSheet)
	default:
		recordSource = repository.NewReportRecordRepository(pgConn)
	}

	var planSource reporting.PlanSource
	switch cfg.Plans.Source {
	case config.PlanSourcePostgres:
		planSource = repository.NewMonthlyPlanRepository(pgConn)
	default:
		planSource = reporting.NewStaticPlans(referenceStore)
	}

	collector := metrics.NewCollector(cfg.App.MetricsNamespace)

	aggregator := aggregating.NewService(aggregating.WithObserver(collector))
	engine := pacing.NewEngine(pacing.Thresholds{
		Warning:  cfg.Tempo.WarningThreshold,
		Critical: cfg.Tempo.CriticalThreshold,
	})

	reportService := reporting.NewService(
		recordSource,
		planSource,
		referenceStore,
		aggregator,
		engine,
		cfg.App.Location,
		reporting.WithObserver(collector),
		reporting.WithSourceTimeout(cfg.Records.Timeout),
		reporting.WithSourceName(sourceName),
	)

	authenticator := authenticating.NewService(cfg.Auth.Secret)

	tempoAlertsService := scheduler.NewTempoAlertsService(
		reportService,
		repository.NewTempoAlertRepository(pgConn),
		collector,
		cfg,
	)

	if err := tempoAlertsService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de alertas de ritmo")
	} else {
		logrus.Info("Agendador de alertas de ritmo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		authenticator,
		collector,
		tempoAlertsService,
		pgConn.Close,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource faz o .env e o arquivo de referência serem resolvidos a partir
// do diretório do binário em desenvolvimento
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)
}

// loadReference carrega escritórios, feriados e planos; com REFERENCE_WATCH
// o arquivo é recarregado a cada alteração
func loadReference(cfg config.Reference) *reporting.ReferenceStore {
	store := reporting.NewReferenceStore(nil)

	var ref *config.ReferenceData
	var err error
	if cfg.Watch {
		ref, err = config.WatchReference(cfg.Path, store.Swap)
	} else {
		ref, err = config.LoadReference(cfg.Path)
	}
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar arquivo de referência")
	}
	store.Swap(ref)

	logrus.WithFields(logrus.Fields{
		"reference_path": cfg.Path,
		"offices":        len(ref.Offices),
		"managers":       len(ref.Plans),
	}).Info("Arquivo de referência carregado")

	return store
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
