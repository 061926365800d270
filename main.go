//	@title			Campus LMS API
//	@version		1.0.0
//	@description	Campus - a learning management platform for courses, quizzes and assignments

//	@contact.name	Campus Team
//	@contact.email	team@campus.local

//	@host	http://localhost:8080

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

package main

import (
	"fmt"
	"os"
	"path"
	"runtime"

	"campus/config"
	"campus/database"
	_ "campus/docs"
	"campus/router"
	"campus/service"
	"campus/utils"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	logrus.SetReportCaller(true)
	logrus.SetFormatter(&nested.Formatter{
		CustomCallerFormatter: func(f *runtime.Frame) string {
			filename := path.Base(f.File)
			return fmt.Sprintf(" (%s:%d)", filename, f.Line)
		},
		FieldsOrder:     []string{"component", "category"},
		HideKeys:        true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logrus.SetLevel(logrus.InfoLevel)
	logrus.Info("Logger initialized")
}

func main() {
	var port string
	var conf string
	var rootCmd = &cobra.Command{
		Use:   "campus",
		Short: "Campus is a learning management platform",
		Run: func(cmd *cobra.Command, args []string) {
			logrus.Println("Please specify a mode: serve or migrate")
		},
	}

	rootCmd.PersistentFlags().StringVarP(&port, "port", "p", "8080", "Port to run the server on")
	rootCmd.PersistentFlags().StringVarP(&conf, "conf", "c", "", "Path to configuration directory")

	if err := viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port")); err != nil {
		logrus.Fatalf("failed to bind flag: %v", err)
	}
	if err := viper.BindPFlag("conf", rootCmd.PersistentFlags().Lookup("conf")); err != nil {
		logrus.Fatalf("failed to bind flag: %v", err)
	}

	// Serve command - runs the HTTP API with maintenance jobs
	var serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		Run: func(cmd *cobra.Command, args []string) {
			config.Init(viper.GetString("conf"))
			database.InitDB()
			utils.InitValidator()

			if err := service.InitializeSystemData(); err != nil {
				logrus.Fatalf("failed to seed system data: %v", err)
			}

			jobs, err := service.StartMaintenanceJobs()
			if err != nil {
				logrus.Fatalf("failed to start maintenance jobs: %v", err)
			}
			defer jobs.Stop()

			engine := router.New()
			port := viper.GetString("port")
			logrus.Infof("Serving on :%s", port)
			if err := engine.Run(":" + port); err != nil {
				logrus.Fatalf("server stopped: %v", err)
			}
		},
	}

	// Migrate command - connects, migrates the schema and seeds, then exits
	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database schema and seed system data",
		Run: func(cmd *cobra.Command, args []string) {
			config.Init(viper.GetString("conf"))
			database.InitDB()

			if err := service.InitializeSystemData(); err != nil {
				logrus.Fatalf("failed to seed system data: %v", err)
			}
			logrus.Info("Migration complete")
		},
	}

	rootCmd.AddCommand(serveCmd, migrateCmd)
	if err := rootCmd.Execute(); err != nil {
		logrus.Println(err.Error())
		os.Exit(1)
	}
}
