package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"urlclean/internal/urlx"
)

var evalJSON bool

var evalCmd = &cobra.Command{
	Use:   "eval URL",
	Short: "展示 URL 的评估细节",
	Long: `评估单个 URL 并展示命中的规则、每个查询参数的处置决定
以及合并后的警告设置，但不实际修改 URL。`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := setup()
		if err != nil {
			return err
		}

		u, err := urlx.FromString(args[0])
		if err != nil {
			return err
		}
		ev := eng.Evaluate(u.Parts())

		if evalJSON {
			data, err := json.MarshalIndent(ev, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "命中规则: %d\n", len(ev.Matches))
		for _, m := range ev.Matches {
			fmt.Fprintf(out, "  #%d %s (%s)\n", m.Index, m.Rule.Name, m.Rule.ID)
		}
		fmt.Fprintln(out, "参数处置:")
		for _, eff := range ev.TokenEffects {
			mark := "保留"
			if eff.WillBeRemoved {
				mark = "移除"
			}
			fmt.Fprintf(out, "  [%d] %-20s %s", eff.TokenIndex, eff.Name, mark)
			if len(eff.MatchedRuleIndexes) > 0 {
				fmt.Fprintf(out, " (规则 %v)", eff.MatchedRuleIndexes)
			}
			fmt.Fprintln(out)
		}
		if ev.Warnings.WarnOnEmbeddedCredentials != nil && *ev.Warnings.WarnOnEmbeddedCredentials {
			fmt.Fprintln(out, "警告: 将检查 URL 内嵌凭据")
		}
		if len(ev.Warnings.SensitiveParams) > 0 {
			fmt.Fprintf(out, "敏感参数: %v\n", ev.Warnings.SensitiveParams)
		}
		return nil
	},
}

func init() {
	evalCmd.Flags().BoolVar(&evalJSON, "json", false, "以 JSON 输出完整评估结果")
	rootCmd.AddCommand(evalCmd)
}
