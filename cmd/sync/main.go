package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	repository "uaizouk_billing/internal/adapter/persistence/repository"
	"uaizouk_billing/internal/domain/billing"
	"uaizouk_billing/internal/infrastructure/database"
	"uaizouk_billing/internal/infrastructure/payments"
	"uaizouk_billing/internal/usecase"
	"uaizouk_billing/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
)

const defaultEventTag = "UAIZOUK"

// sync runs the batch jobs from the command line, outside the HTTP server.
// It prints the batch summary as JSON so cron output stays greppable.
func main() {
	reconcile := flag.Bool("reconcile", false, "refresh payment status from ASAAS charges")
	recompute := flag.Bool("recompute", false, "recompute payment breakdown of legacy registrations")
	statusOnly := flag.Bool("status-only", false, "count charges as paid by status alone, ignoring payment date")
	flag.Parse()

	if !*reconcile && !*recompute {
		flag.Usage()
		os.Exit(2)
	}

	ddb := database.ConnectDynamoDB()
	registrationRepo := repository.NewRegistrationDynamoRepository(ddb)
	formConfigRepo := repository.NewFormConfigDynamoRepository(ddb)

	var chargeGateway interfaces.IChargeGateway
	asaas, err := payments.NewAsaasClient(os.Getenv("ASAAS_API_KEY"))
	if err != nil {
		log.Printf("[sync] ASAAS gateway not configured: %v", err)
	} else {
		chargeGateway = asaas
	}

	eventTag := os.Getenv("EVENT_TAG")
	if eventTag == "" {
		eventTag = defaultEventTag
	}
	paid := billing.StrictPaidPredicate
	if *statusOnly {
		paid = billing.StatusOnlyPaidPredicate
	}
	parser := billing.NewDescriptionParser(eventTag, nil)
	reconciler := billing.NewReconciler(parser, paid)

	uc := usecase.NewReconciliationUseCase(registrationRepo, formConfigRepo, chargeGateway, reconciler)

	ctx := context.Background()

	if *reconcile {
		summary, err := uc.ReconcileAll(ctx)
		if err != nil {
			log.Fatalf("[sync] reconcile failed: %v", err)
		}
		printSummary("reconcile", summary)
	}

	if *recompute {
		summary, err := uc.RecomputeBreakdowns(ctx)
		if err != nil {
			log.Fatalf("[sync] recompute failed: %v", err)
		}
		printSummary("recompute", summary)
	}
}

func printSummary(job string, summary usecase.BatchSummary) {
	out, err := json.Marshal(summary)
	if err != nil {
		log.Fatalf("[sync] marshal summary failed: %v", err)
	}
	log.Printf("[sync][%s] %s", job, out)
}
