package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
	"github.com/vfg2006/sales-tempo-api/internal/usecases/authenticating"
)

var periodArgs = []string{string(domain.PeriodWeek), string(domain.PeriodMonth), string(domain.PeriodQuarter), string(domain.PeriodCustom)}

func newSummaryCommand(opts *options) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:       "summary <week|month|quarter|custom>",
		Short:     "Totais por gerente no período e no período anterior",
		Args:      cobra.ExactArgs(1),
		ValidArgs: periodArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := opts.service()
			if err != nil {
				return err
			}

			p, err := period(service, args[0], start, end)
			if err != nil {
				return err
			}

			summary, err := service.Summary(cmd.Context(), p, opts.office)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "data inicial do período custom")
	cmd.Flags().StringVar(&end, "end", "", "data final do período custom")
	return cmd
}

func newCompareCommand(opts *options) *cobra.Command {
	var aStart, aEnd, bStart, bEnd string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compara dois períodos arbitrários",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := opts.service()
			if err != nil {
				return err
			}

			first, err := period(service, string(domain.PeriodCustom), aStart, aEnd)
			if err != nil {
				return fmt.Errorf("primeiro período: %w", err)
			}
			second, err := period(service, string(domain.PeriodCustom), bStart, bEnd)
			if err != nil {
				return fmt.Errorf("segundo período: %w", err)
			}

			comparison, err := service.Compare(cmd.Context(), first, second, opts.office)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), comparison)
		},
	}

	cmd.Flags().StringVar(&aStart, "a-start", "", "início do primeiro período")
	cmd.Flags().StringVar(&aEnd, "a-end", "", "fim do primeiro período")
	cmd.Flags().StringVar(&bStart, "b-start", "", "início do segundo período")
	cmd.Flags().StringVar(&bEnd, "b-end", "", "fim do segundo período")
	for _, name := range []string{"a-start", "a-end", "b-start", "b-end"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newOfficesCommand(opts *options) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:       "offices <week|month|quarter|custom>",
		Short:     "Totais por escritório, total geral e linhas sem escritório",
		Args:      cobra.ExactArgs(1),
		ValidArgs: periodArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := opts.service()
			if err != nil {
				return err
			}

			p, err := period(service, args[0], start, end)
			if err != nil {
				return err
			}

			breakdown, err := service.OfficeSummary(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), breakdown)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "data inicial do período custom")
	cmd.Flags().StringVar(&end, "end", "", "data final do período custom")
	return cmd
}

func newSeriesCommand(opts *options) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:       "series <week|month|quarter|custom>",
		Short:     "Totais diários do período, com dias sem relatório zerados",
		Args:      cobra.ExactArgs(1),
		ValidArgs: periodArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := opts.service()
			if err != nil {
				return err
			}

			p, err := period(service, args[0], start, end)
			if err != nil {
				return err
			}

			series, err := service.DailySeries(cmd.Context(), p, opts.office)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), series)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "data inicial do período custom")
	cmd.Flags().StringVar(&end, "end", "", "data final do período custom")
	return cmd
}

func newDiagnoseCommand(opts *options) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:       "diagnose <week|month|quarter|custom>",
		Short:     "Mostra por que cada linha foi ignorada ou teve campos zerados",
		Args:      cobra.ExactArgs(1),
		ValidArgs: periodArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := opts.service()
			if err != nil {
				return err
			}

			p, err := period(service, args[0], start, end)
			if err != nil {
				return err
			}

			diagnostics, err := service.Diagnose(cmd.Context(), p, opts.office)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), diagnostics)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "data inicial do período custom")
	cmd.Flags().StringVar(&end, "end", "", "data final do período custom")
	return cmd
}

func newTempoCommand(opts *options) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "tempo",
		Short: "Alertas de gerentes abaixo do ritmo no mês",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := opts.service()
			if err != nil {
				return err
			}

			day, err := target(service, date)
			if err != nil {
				return err
			}

			alerts, err := service.TempoAlerts(cmd.Context(), day, opts.office)
			if err != nil {
				return err
			}
			if alerts == nil {
				alerts = []domain.TempoAlert{}
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"target_date": day,
				"alerts":      alerts,
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "data alvo, hoje quando vazia")
	return cmd
}

func newPacingCommand(opts *options) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "pacing",
		Short: "Ritmo de todos os gerentes com realizado, plano e esperado",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := opts.service()
			if err != nil {
				return err
			}

			day, err := target(service, date)
			if err != nil {
				return err
			}

			report, err := service.Pacing(cmd.Context(), day, opts.office)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "data alvo, hoje quando vazia")
	return cmd
}

// newTokenCommand emite tokens para a API; os usuários vivem fora do serviço
func newTokenCommand() *cobra.Command {
	var (
		secret string
		req    authenticating.TokenRequest
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite um token de acesso para a API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := authenticating.NewService(secret).IssueToken(req)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "mesmo valor de AUTH_SECRET da API")
	cmd.Flags().StringVar(&req.UserID, "user", "", "id do usuário")
	cmd.Flags().StringVar(&req.UserName, "name", "", "nome do usuário")
	cmd.Flags().IntVar(&req.RoleID, "role", domain.RoleOffice, "1 matriz, 2 escritório")
	cmd.Flags().StringVar(&req.Office, "user-office", "", "escritório do usuário")
	cmd.Flags().DurationVar(&req.TTL, "ttl", 24*time.Hour, "validade do token")
	_ = cmd.MarkFlagRequired("secret")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
