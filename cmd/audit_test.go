package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"storeadmin.GO/config"
	entity "storeadmin.GO/model/entity"
	auditRepo "storeadmin.GO/model/repository/audit"
)

func seedAuditLog(t *testing.T) {
	t.Helper()
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "audit_cmd_test.db"))
	t.Setenv("GORM_LOG", "off")

	db, err := config.NewDB()
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.AuditEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo := auditRepo.NewAuditRepository(db)
	entries := []entity.AuditEntry{
		{Resource: "products", Action: "create", EntityID: "prod_1", Outcome: entity.AuditOutcomeSuccess},
		{Resource: "orders", Action: "delete", EntityID: "ord_1", Outcome: entity.AuditOutcomeFailed, Message: "upstream 502"},
	}
	for i := range entries {
		if err := repo.Record(&entries[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestAuditRecent_ResourceFlagFilters(t *testing.T) {
	seedAuditLog(t)

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"audit:recent", "--resource", "products"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !strings.Contains(out.String(), "prod_1") {
		t.Errorf("output = %q, want the products entry", out.String())
	}
	if strings.Contains(out.String(), "ord_1") {
		t.Errorf("output = %q, other resources must be filtered out", out.String())
	}
}
