package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFio(t *testing.T) {
	u := &User{Name: "Name", Surname: "Surname"}
	assert.Equal(t, "Name Surname", u.Fio())
}

func TestAge(t *testing.T) {
	t.Run("nil without a birth date", func(t *testing.T) {
		u := &User{}
		assert.Nil(t, u.Age())
	})

	t.Run("birthday today counts the full year", func(t *testing.T) {
		now := time.Now()
		birthDate := time.Date(now.Year()-30, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		u := &User{BirthDate: &birthDate}

		age := u.Age()
		require.NotNil(t, age)
		assert.Equal(t, 30, *age)
	})

	t.Run("day before the birthday is still the previous age", func(t *testing.T) {
		now := time.Now()
		birthDate := time.Date(now.Year()-30, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
		u := &User{BirthDate: &birthDate}

		age := u.Age()
		require.NotNil(t, age)
		assert.Equal(t, 29, *age)
	})
}

func TestParseGender(t *testing.T) {
	assert.Equal(t, GenderMale, ParseGender("M"))
	assert.Equal(t, GenderMale, ParseGender("m"))
	assert.Equal(t, GenderFemale, ParseGender(" f "))
	assert.Equal(t, Gender(""), ParseGender(""))
	assert.Equal(t, Gender(""), ParseGender("unknown"))
}
