package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "QuickShift-backend/internal/model"
	"QuickShift-backend/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported test users and records
var (
	TestWorker1   m.User
	TestWorker2   m.User
	TestEmployer1 m.User
	TestEmployer2 m.User

	// Add exported plain password
	TestSeedPassword = "SeedPass123!"

	// Seeded job posts: 1 and 3 published, 2 is a draft of employer 1
	TestJob1 m.Job
	TestJob2 m.Job
	TestJob3 m.Job

	// Seeded application against TestJob1
	TestApplication1 m.Application
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	// Seed sample workers, employers, jobs and an application
	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample worker and employer users with a few job
// posts if the database is empty.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return loadTestData(db)
	}

	userSpecs := []struct {
		email       string
		name        string
		phone       string
		companyName string
		role        string
	}{
		{"worker1@example.com", "Alice Tremblay", "416-555-0101", "", m.RoleWorker},
		{"worker2@example.com", "Bob Singh", "416-555-0102", "", m.RoleWorker},
		{"employer1@example.com", "Carol Martin", "905-555-0201", "Maple Logistics Inc.", m.RoleEmployer},
		{"employer2@example.com", "Dan Roy", "604-555-0202", "Pacific Build Co.", m.RoleEmployer},
	}

	// Pre-hash shared password for all seeded users
	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	users := make([]m.User, 0, len(userSpecs))
	for _, s := range userSpecs {
		user := m.User{
			ID:       uuid.New(),
			Email:    s.email,
			Password: hashedPwd,
			Role:     s.role,
			Name:     ptr(s.name),
			Phone:    ptr(s.phone),
		}
		if s.companyName != "" {
			user.CompanyName = ptr(s.companyName)
		}
		users = append(users, user)
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}

	// Map created users to exported variables
	for _, u := range users {
		switch u.Email {
		case "worker1@example.com":
			TestWorker1 = u
		case "worker2@example.com":
			TestWorker2 = u
		case "employer1@example.com":
			TestEmployer1 = u
		case "employer2@example.com":
			TestEmployer2 = u
		}
	}

	// Seed job posts one by one so each gets its own created_at
	jobSpecs := []struct {
		owner uuid.UUID
		info  m.EditableJobInfo
	}{
		{
			owner: TestEmployer1.ID,
			info: m.EditableJobInfo{
				Title:        "Warehouse Associate",
				Company:      "Maple Logistics Inc.",
				Location:     "Toronto, ON",
				Pay:          22.50,
				JobType:      m.JobTypeWarehouse,
				Description:  "Pick, pack and load outgoing orders on rotating shifts.",
				ContactEmail: "jobs@maplelogistics.example.com",
				IsPublished:  true,
			},
		},
		{
			owner: TestEmployer1.ID,
			info: m.EditableJobInfo{
				Title:        "Forklift Operator",
				Company:      "Maple Logistics Inc.",
				Location:     "Mississauga, ON",
				Pay:          26.00,
				JobType:      m.JobTypeLogistics,
				Description:  "Certified forklift operator for the night shift.",
				ContactEmail: "jobs@maplelogistics.example.com",
				IsPublished:  false,
			},
		},
		{
			owner: TestEmployer2.ID,
			info: m.EditableJobInfo{
				Title:        "Construction Labourer",
				Company:      "Pacific Build Co.",
				Location:     "Vancouver, BC",
				Pay:          28.75,
				JobType:      m.JobTypeConstruction,
				Description:  "General site labour, no experience required.",
				ContactEmail: "hiring@pacificbuild.example.com",
				IsPublished:  true,
			},
		},
	}

	jobs := make([]m.Job, 0, len(jobSpecs))
	for _, s := range jobSpecs {
		job := m.Job{OwnerID: s.owner, EditableJobInfo: s.info}
		if err := db.Create(&job).Error; err != nil {
			return err
		}
		if err := db.First(&job, "id = ?", job.ID).Error; err != nil {
			return err
		}
		jobs = append(jobs, job)
	}

	TestJob1 = jobs[0]
	TestJob2 = jobs[1]
	TestJob3 = jobs[2]

	application := m.Application{
		JobID: TestJob1.ID,
		Name:  "Eve Kowalski",
		Email: "eve@example.com",
		Phone: "647-555-0300",
	}
	if err := db.Create(&application).Error; err != nil {
		return err
	}
	if err := db.First(&application, "id = ?", application.ID).Error; err != nil {
		return err
	}
	TestApplication1 = application

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var users []m.User
	if err := db.Where("email IN ?", []string{
		"worker1@example.com", "worker2@example.com", "employer1@example.com", "employer2@example.com",
	}).Find(&users).Error; err != nil {
		return err
	}
	for _, u := range users {
		switch u.Email {
		case "worker1@example.com":
			TestWorker1 = u
		case "worker2@example.com":
			TestWorker2 = u
		case "employer1@example.com":
			TestEmployer1 = u
		case "employer2@example.com":
			TestEmployer2 = u
		}
	}

	// Load first three job posts deterministically
	var jobs []m.Job
	if err := db.Order("id ASC").Limit(3).Find(&jobs).Error; err == nil {
		if len(jobs) > 0 {
			TestJob1 = jobs[0]
		}
		if len(jobs) > 1 {
			TestJob2 = jobs[1]
		}
		if len(jobs) > 2 {
			TestJob3 = jobs[2]
		}
	}

	_ = db.Order("id ASC").First(&TestApplication1, "job_id = ?", TestJob1.ID).Error

	return nil
}

// ptr helper
func ptr[T any](v T) *T { return &v }
