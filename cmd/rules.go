package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"urlclean/pkg/rulespec"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "规则文件工具",
}

var rulesValidateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "校验规则文件",
	Long:  `解码规则文件并报告格式错误。旧版 (1.0) 文档会先在内存中迁移再校验。`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		cfg, err := rulespec.Decode(data)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "规则文件有效: %s (版本 %s, %d 条规则)\n",
			cfg.Name, cfg.Version, len(cfg.Rules))
		return nil
	},
}

var rulesInitCmd = &cobra.Command{
	Use:   "init FILE",
	Short: "生成初始规则文件",
	Long:  `把内置默认规则集写入指定文件，作为自定义规则的起点。已存在的文件不会被覆盖。`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(args[0]); err == nil {
			return fmt.Errorf("文件已存在: %s", args[0])
		}
		data, err := json.MarshalIndent(rulespec.Default(), "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[0], append(data, '\n'), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "已写入默认规则集: %s\n", args[0])
		return nil
	},
}

func init() {
	rulesCmd.AddCommand(rulesValidateCmd)
	rulesCmd.AddCommand(rulesInitCmd)
	rootCmd.AddCommand(rulesCmd)
}
