package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-tempo-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tempo-api/infrastructure/repository"
	"github.com/vfg2006/sales-tempo-api/infrastructure/sheet"
	"github.com/vfg2006/sales-tempo-api/internal/config"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
	"github.com/vfg2006/sales-tempo-api/pkg/log"
)

// schemaStatements cria as tabelas do serviço. As células do relatório diário
// ficam como texto, iguais à planilha, e só são interpretadas na agregação.
func schemaStatements() []string {
	columns := make([]string, 0, len(domain.RecordFields))
	for _, field := range domain.RecordFields {
		columns = append(columns, fmt.Sprintf("\t%s TEXT", field))
	}

	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS daily_reports (
	id TEXT PRIMARY KEY,
%s,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`, strings.Join(columns, ",\n")),
		`CREATE INDEX IF NOT EXISTS daily_reports_created_at_idx ON daily_reports (created_at, id)`,
		`CREATE TABLE IF NOT EXISTS monthly_plans (
	period VARCHAR(7) NOT NULL,
	manager TEXT NOT NULL,
	plan_key TEXT NOT NULL,
	value DOUBLE PRECISION NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT monthly_plans_unique UNIQUE (period, manager, plan_key)
)`,
		`CREATE TABLE IF NOT EXISTS tempo_alerts (
	id TEXT PRIMARY KEY,
	run_id TEXT NOT NULL,
	target_date DATE NOT NULL,
	manager TEXT NOT NULL,
	metric TEXT NOT NULL,
	actual DOUBLE PRECISION NOT NULL,
	expected DOUBLE PRECISION NOT NULL,
	deviation_percent DOUBLE PRECISION NOT NULL,
	level TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
		`CREATE INDEX IF NOT EXISTS tempo_alerts_target_date_idx ON tempo_alerts (target_date)`,
	}
}

func createSchema(ctx context.Context, conn postgres.Conn) error {
	logrus.Info("Criando tabelas...")

	return conn.RunInTransaction(ctx, func(tx *sqlx.Tx) error {
		for _, statement := range schemaStatements() {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("erro ao executar %q: %w", firstLine(statement), err)
			}
		}
		return nil
	})
}

func firstLine(statement string) string {
	line, _, _ := strings.Cut(statement, "\n")
	return line
}

// loadSheet copia as linhas de uma exportação xlsx para daily_reports
func loadSheet(ctx context.Context, conn postgres.Conn, path, sheetName string, replace bool) error {
	startTime := time.Now()

	rows, err := sheet.NewReader(path, sheetName).ReadRows(ctx)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"path": path, "rows": len(rows)}).Info("Planilha lida")

	return conn.RunInTransaction(ctx, func(tx *sqlx.Tx) error {
		if replace {
			if _, err := tx.ExecContext(ctx, "DELETE FROM daily_reports"); err != nil {
				return fmt.Errorf("erro ao limpar daily_reports: %w", err)
			}
		}

		saved, err := repository.NewReportRecordRepository(tx).SaveRows(ctx, rows)
		if err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"saved":   saved,
			"elapsed": time.Since(startTime).String(),
		}).Info("Carga de relatórios diários concluída")
		return nil
	})
}

// seedPlans grava os planos do arquivo de referência para o mês informado
func seedPlans(ctx context.Context, conn postgres.Conn, referencePath, month string) error {
	period, err := time.Parse("01-2006", month)
	if err != nil {
		return fmt.Errorf("mês inválido %q, use mm-aaaa: %w", month, err)
	}

	ref, err := config.LoadReference(referencePath)
	if err != nil {
		return err
	}

	if err := repository.NewMonthlyPlanRepository(conn).SaveMonthlyPlans(ctx, period.Year(), period.Month(), ref.Plans); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"period":   month,
		"managers": len(ref.Plans),
	}).Info("Planos mensais gravados")
	return nil
}

func newMigrateCommand() *cobra.Command {
	var (
		xlsxPath      string
		sheetName     string
		replace       bool
		referencePath string
		planMonth     string
	)

	cmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Cria as tabelas e carrega relatórios e planos",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			logrus.Info("Conectando ao banco de dados...")
			conn, err := postgres.NewConnection(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("erro ao conectar ao banco de dados: %w", err)
			}
			defer conn.Close()
			logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

			if err := createSchema(ctx, conn); err != nil {
				return err
			}

			if xlsxPath != "" {
				if err := loadSheet(ctx, conn, xlsxPath, sheetName, replace); err != nil {
					return err
				}
			}

			if planMonth != "" {
				if referencePath == "" {
					referencePath = cfg.Reference.Path
				}
				if err := seedPlans(ctx, conn, referencePath, planMonth); err != nil {
					return err
				}
			}

			logrus.Info("Migração concluída")
			return nil
		},
	}

	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "exportação xlsx a carregar em daily_reports")
	cmd.Flags().StringVar(&sheetName, "sheet", "Reports", "aba com os relatórios")
	cmd.Flags().BoolVar(&replace, "replace", false, "apaga daily_reports antes da carga")
	cmd.Flags().StringVar(&referencePath, "reference", "", "arquivo de referência, padrão REFERENCE_PATH")
	cmd.Flags().StringVar(&planMonth, "plans", "", "mês (mm-aaaa) que recebe os planos do arquivo de referência")

	return cmd
}

func main() {
	log.Setup("info")
	logrus.Info("Iniciando script de migração...")

	if err := newMigrateCommand().Execute(); err != nil {
		logrus.WithError(err).Error("Migração falhou")
		os.Exit(1)
	}
}
