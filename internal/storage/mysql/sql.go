package mysql

const createCustomersSQL = `
CREATE TABLE IF NOT EXISTS customers (
  id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  email      VARCHAR(255) NOT NULL,
  first_name VARCHAR(100) NOT NULL,
  last_name  VARCHAR(100) NOT NULL,
  phone      VARCHAR(50),
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  PRIMARY KEY (id),
  UNIQUE KEY uq_customers_email (email)
)`

const createBookingsSQL = `
CREATE TABLE IF NOT EXISTS bookings (
  id                BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  booking_id        VARCHAR(64) NOT NULL,
  confirmation_code VARCHAR(64),
  customer_id       BIGINT UNSIGNED,
  hotel_id          VARCHAR(64),
  hotel_name        VARCHAR(255),
  room_type         VARCHAR(255),
  check_in          VARCHAR(10),
  check_out         VARCHAR(10),
  guests            INT,
  nights            INT,
  original_price    DECIMAL(12,2),
  markup_price      DECIMAL(12,2),
  commission        DECIMAL(12,2),
  currency          VARCHAR(3),
  status            VARCHAR(32) NOT NULL DEFAULT 'confirmed',
  prebook_id        VARCHAR(128),
  transaction_id    VARCHAR(128),
  created_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (id),
  UNIQUE KEY uq_bookings_booking_id (booking_id),
  KEY idx_bookings_customer (customer_id)
)`

// LAST_INSERT_ID(id) makes the duplicate path report the existing row's
// id through LastInsertId. COALESCE keeps a known phone when the new
// booking omits one.
const upsertCustomerSQL = `
INSERT INTO customers (email, first_name, last_name, phone)
VALUES (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  id         = LAST_INSERT_ID(id),
  first_name = VALUES(first_name),
  last_name  = VALUES(last_name),
  phone      = COALESCE(VALUES(phone), customers.phone),
  updated_at = CURRENT_TIMESTAMP
`

// Re-saving the same booking id only refreshes mutable fields, so a
// replayed finalize cannot duplicate a row.
const insertBookingSQL = `
INSERT INTO bookings
  (booking_id, confirmation_code, customer_id, hotel_id, hotel_name, room_type,
   check_in, check_out, guests, nights, original_price, markup_price, commission,
   currency, status, prebook_id, transaction_id)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  confirmation_code = VALUES(confirmation_code),
  status            = VALUES(status)
`

const getBookingSQL = `
SELECT
  booking_id, confirmation_code, customer_id, hotel_id, hotel_name, room_type,
  check_in, check_out, guests, nights, original_price, markup_price, commission,
  currency, status, prebook_id, transaction_id, created_at
FROM bookings
WHERE booking_id = ?
`

const listCustomerBookingsSQL = `
SELECT
  b.booking_id, b.confirmation_code, b.customer_id, b.hotel_id, b.hotel_name, b.room_type,
  b.check_in, b.check_out, b.guests, b.nights, b.original_price, b.markup_price, b.commission,
  b.currency, b.status, b.prebook_id, b.transaction_id, b.created_at
FROM bookings b
JOIN customers c ON c.id = b.customer_id
WHERE c.email = ?
ORDER BY b.created_at DESC, b.id DESC
`

const commissionStatsSQL = `
SELECT
  COUNT(*),
  COALESCE(SUM(commission), 0),
  COALESCE(SUM(markup_price), 0),
  COALESCE(AVG(commission), 0)
FROM bookings
WHERE status = 'confirmed'
`
