package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	_ "github.com/lib/pq"

	"github.com/m04kA/HMS-AppointmentService/internal/config"
	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	"github.com/m04kA/HMS-AppointmentService/internal/infra/directory"
	"github.com/m04kA/HMS-AppointmentService/internal/service/auth"
)

// Наполняет базу демо-данными: учетные записи (админ + врачи)
// и случайные бронирования на ближайшие дни
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	cfg, err := config.Load("config.toml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	dirStore, err := directory.Load(cfg.Directory.File)
	if err != nil {
		log.Fatalf("load directory: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	if err := seedUsers(db, dirStore); err != nil {
		log.Fatalf("seed users: %v", err)
	}
	if err := seedAppointments(db, dirStore, 50); err != nil {
		log.Fatalf("seed appointments: %v", err)
	}

	log.Println("seed complete")
}

func seedUsers(db *sql.DB, dirStore *directory.Store) error {
	log.Println("seeding users")

	type account struct {
		username string
		password string
		role     domain.Role
	}

	accounts := []account{
		{username: "admin", password: "admin123", role: domain.RoleAdmin},
	}
	for _, name := range dirStore.DoctorNames() {
		accounts = append(accounts, account{
			username: name,
			password: "doctor123",
			role:     domain.RoleDoctor,
		})
	}

	for _, acc := range accounts {
		hash, err := auth.HashPassword(acc.password)
		if err != nil {
			return err
		}

		_, err = db.Exec(`
			INSERT INTO users (username, password_hash, role)
			VALUES ($1, $2, $3)
			ON CONFLICT (username) DO NOTHING
		`, acc.username, hash, string(acc.role))
		if err != nil {
			return err
		}
	}

	log.Printf("users seeded: %d", len(accounts))
	return nil
}

func seedAppointments(db *sql.DB, dirStore *directory.Store, count int) error {
	log.Printf("seeding %d appointments", count)

	states := dirStore.States()
	departments := dirStore.Departments()
	slots := dirStore.SlotTemplate()

	inserted := 0
	for i := 0; i < count; i++ {
		state := states[gofakeit.Number(0, len(states)-1)]
		cities := dirStore.Cities(state)
		city := cities[gofakeit.Number(0, len(cities)-1)]
		hospitals := dirStore.Hospitals(state, city)
		if len(hospitals) == 0 {
			continue
		}
		hospital := hospitals[gofakeit.Number(0, len(hospitals)-1)]

		department := departments[gofakeit.Number(0, len(departments)-1)]
		doctors := dirStore.Doctors(department)
		if len(doctors) == 0 {
			continue
		}
		doctor := doctors[gofakeit.Number(0, len(doctors)-1)].Name

		date := time.Now().AddDate(0, 0, gofakeit.Number(0, 13)).Format(domain.DateFormat)
		slot := slots[gofakeit.Number(0, len(slots)-1)]

		// Занятый слот не ошибка для демо-данных: пропускаем
		res, err := db.Exec(`
			INSERT INTO appointments (name, phone, state, city, hospital, department, doctor, date, time)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (doctor, date, time) DO NOTHING
		`, gofakeit.Name(), gofakeit.Phone(), state, city, hospital, department, doctor, date, slot)
		if err != nil {
			return err
		}

		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	log.Printf("appointments seeded: %d (of %d attempted)", inserted, count)
	return nil
}
