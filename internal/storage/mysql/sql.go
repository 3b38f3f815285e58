package mysql

// -----------------------------------------------------------------------------
// COUNTRIES
// -----------------------------------------------------------------------------

const listCountriesSQL = `
SELECT
  c.id,
  c.name,
  COUNT(t.id) AS travel_count
FROM countries c
LEFT JOIN travels t ON t.country_id = c.id
GROUP BY c.id, c.name
ORDER BY c.name ASC
`

const getCountrySQL = `
SELECT
  c.id,
  c.name,
  COUNT(t.id) AS travel_count
FROM countries c
LEFT JOIN travels t ON t.country_id = c.id
WHERE c.id = ?
GROUP BY c.id, c.name
`

// Abbreviated travel rows embedded in the single-country view.
const listCountryTravelsSQL = `
SELECT id, title, seats_available, price, start_date, end_date
FROM travels
WHERE country_id = ?
ORDER BY start_date ASC
`

const countryExistsSQL = `SELECT 1 FROM countries WHERE id = ?`

// excludeID = 0 never matches a row, so the same statement serves both the
// create pre-check and the rename pre-check.
const countryNameTakenSQL = `SELECT 1 FROM countries WHERE name = ? AND id <> ?`

const countCountryTravelsSQL = `SELECT COUNT(*) FROM travels WHERE country_id = ?`

const insertCountrySQL = `INSERT INTO countries (name) VALUES (?)`

const updateCountrySQL = `UPDATE countries SET name = ? WHERE id = ?`

const deleteCountrySQL = `DELETE FROM countries WHERE id = ?`

// -----------------------------------------------------------------------------
// TRAVELS
// -----------------------------------------------------------------------------

// Shared SELECT for every travel read; country_name is always joined.
const selectTravelsSQL = `
SELECT
  t.id,
  t.country_id,
  c.name AS country_name,
  t.title,
  t.description,
  t.price,
  t.seats_available,
  t.start_date,
  t.end_date,
  t.created_at
FROM travels t
JOIN countries c ON t.country_id = c.id
`

const countTravelsSQL = `
SELECT COUNT(*)
FROM travels t
JOIN countries c ON t.country_id = c.id
`

const getTravelSQL = selectTravelsSQL + `WHERE t.id = ?`

const insertTravelSQL = `
INSERT INTO travels
  (country_id, seats_available, title, description, price, start_date, end_date)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
`

const deleteTravelSQL = `DELETE FROM travels WHERE id = ?`
