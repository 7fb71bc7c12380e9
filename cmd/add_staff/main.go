// Command add_staff creates a staff account from the command line, for
// bootstrapping a fresh deployment.
package main

import (
	"flag"
	"log"

	"github.com/google/uuid"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/config"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/database"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "staff email address")
	password := flag.String("password", "", "initial password (min 8 chars)")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" {
		flag.Usage()
		log.Fatal("email, password and first-name are required")
	}
	if len(*password) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	config.LoadEnv()
	config.InitDB()
	defer config.GetDB().Close()

	store := database.NewStore(config.GetDB())
	existing, err := store.StaffByEmail(*email)
	if err != nil {
		log.Fatal("Lookup failed:", err)
	}
	if existing != nil {
		log.Fatalf("A staff account already exists for %s", *email)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Hashing failed:", err)
	}
	staff := &models.Staff{
		ID:        uuid.New().String(),
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
	}
	if err := store.CreateStaff(staff); err != nil {
		log.Fatal("Insert failed:", err)
	}
	log.Printf("Created staff %s (%s)", staff.FullName(), staff.ID)
}
