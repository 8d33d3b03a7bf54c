package routes

import (
	"log"
	"os"
	"strconv"

	_ "uaizouk_billing/docs" // This will be auto-generated
	"uaizouk_billing/internal/adapter/http/handlers"
	repository2 "uaizouk_billing/internal/adapter/persistence/repository"
	"uaizouk_billing/internal/domain/billing"
	"uaizouk_billing/internal/infrastructure/database"
	"uaizouk_billing/internal/infrastructure/payments"
	"uaizouk_billing/internal/usecase"
	"uaizouk_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

const defaultEventTag = "UAIZOUK"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	registrationRepo := repository2.NewRegistrationDynamoRepository(ddb)
	formConfigRepo := repository2.NewFormConfigDynamoRepository(ddb)

	registrationUseCase := usecase.NewRegistrationUseCase(registrationRepo, formConfigRepo)

	var chargeGateway interfaces.IChargeGateway
	asaas, err := payments.NewAsaasClient(os.Getenv("ASAAS_API_KEY"))
	if err != nil {
		log.Printf("ASAAS gateway not configured: %v", err)
	} else {
		chargeGateway = asaas
	}

	eventTag := os.Getenv("EVENT_TAG")
	if eventTag == "" {
		eventTag = defaultEventTag
	}
	parser := billing.NewDescriptionParser(eventTag, nil)
	reconciler := billing.NewReconciler(parser, billing.StrictPaidPredicate)

	reconciliationUseCase := usecase.NewReconciliationUseCase(registrationRepo, formConfigRepo, chargeGateway, reconciler)

	registrationHandler := handlers.NewRegistrationHandler(registrationUseCase)
	reconciliationHandler := handlers.NewReconciliationHandler(reconciliationUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, registrationHandler, reconciliationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
