//go:build integration
// +build integration

package integration

import (
	"log"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/opstrack/forms-go/internal/api/middleware"
	"github.com/opstrack/forms-go/internal/config"
	"github.com/opstrack/forms-go/internal/config/db"
	"github.com/opstrack/forms-go/internal/domain/form"
	"github.com/opstrack/forms-go/internal/domain/submission"
	"github.com/opstrack/forms-go/internal/testutils"
)

// TestContext holds shared test dependencies.
type TestContext struct {
	Router     *gin.Engine
	AdminToken string
	UserToken  string
}

var testCtx *TestContext

func TestMain(m *testing.M) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	_ = os.Setenv("JWT_SECRET", "test-secret-key-for-integration-testing")
	_ = os.Setenv("ISSUER", "test-forms")
	_ = os.Setenv("REQUIRE_FILE_ON_CREATE", "true")

	config.LoadConfig()
	middleware.Init()

	gormDB, cleanup := testutils.SetupPostgresForIntegration()
	db.InitWithGormDB(gormDB)

	testCtx = &TestContext{Router: testutils.SetupRouter(gormDB)}

	adminToken, err := middleware.GenerateToken(1, "test-admin", true, 24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to generate admin token: %v", err)
	}
	userToken, err := middleware.GenerateToken(2, "test-user", false, 24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to generate user token: %v", err)
	}
	testCtx.AdminToken = adminToken
	testCtx.UserToken = userToken

	code := m.Run()

	if db.DB != nil {
		_ = db.DB.Migrator().DropTable(
			&submission.FormResponseValue{},
			&submission.FormResponse{},
			&form.FormField{},
			&form.Form{},
		)
	}
	cleanup()
	os.Exit(code)
}

// GetTestContext returns the global test context.
func GetTestContext() *TestContext {
	return testCtx
}
