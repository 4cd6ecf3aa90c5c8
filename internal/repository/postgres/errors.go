package postgres

// uniqueViolation is the SQLSTATE of a unique constraint violation.
const uniqueViolation = "23505"
