// Package cmd 实现 urlclean 命令行入口
//
// 命令层只负责读入与输出，不包含任何匹配或编解码逻辑。
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"urlclean/internal/config"
	"urlclean/internal/engine"
	"urlclean/internal/hostcanon"
	"urlclean/internal/logger"
	"urlclean/pkg/rulespec"
)

var (
	cfgFile      string
	rulesFile    string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "urlclean",
	Short: "按主机作用域规则移除 URL 中的跟踪参数",
	Long: `urlclean 按可配置的主机作用域规则清理 URL 中的跟踪查询参数。
未被规则识别的 URL 逐字节保持原样，查询串的顺序、重复键与
空片段在清理前后完全无损。`,
	SilenceUsage: true,
}

// Execute 运行命令树
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径 (yaml)")
	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules", "", "规则文件路径 (json)，缺省使用内置规则集")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "日志级别 (debug/info/warn/error)")
}

// setup 初始化配置、日志与规则引擎
func setup() (*engine.Engine, *logger.ZeroLogger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}
	if logLevelFlag != "" {
		cfg.Log.Level = logLevelFlag
	}
	if rulesFile == "" {
		rulesFile = cfg.Rules.Path
	}

	log := logger.NewZeroLogger(cfg)

	ruleCfg, err := loadRules()
	if err != nil {
		return nil, nil, err
	}

	eng := engine.New(hostcanon.New(), log)
	if err := eng.Load(ruleCfg.Rules); err != nil {
		return nil, nil, fmt.Errorf("规则编译失败: %w", err)
	}
	return eng, log, nil
}

// loadRules 读取规则文件，未指定时回落到内置规则集
func loadRules() (*rulespec.Config, error) {
	if rulesFile == "" {
		return rulespec.Default(), nil
	}
	data, err := os.ReadFile(rulesFile)
	if err != nil {
		return nil, fmt.Errorf("读取规则文件失败: %w", err)
	}
	cfg, err := rulespec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("解析规则文件失败: %w", err)
	}
	return cfg, nil
}
