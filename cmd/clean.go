package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"urlclean/internal/urlx"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [URL...]",
	Short: "清理 URL 并输出结果",
	Long: `解析每个 URL，应用规则集移除命中的跟踪参数，逐行输出清理结果。
不带参数时从标准输入逐行读取。未命中任何规则的 URL 原样输出。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, log, err := setup()
		if err != nil {
			return err
		}

		cleanOne := func(raw string) error {
			u, err := urlx.FromString(raw)
			if err != nil {
				log.Err(err, "URL 无效", "url", raw)
				return err
			}
			cleaned := eng.ApplyRemovals(u.Parts())
			fmt.Fprintln(cmd.OutOrStdout(), cleaned.String())
			return nil
		}

		if len(args) > 0 {
			for _, raw := range args {
				if err := cleanOne(raw); err != nil {
					return err
				}
			}
			return nil
		}

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			if err := cleanOne(line); err != nil {
				return err
			}
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
