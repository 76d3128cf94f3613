package db

const NO_SINGLE_DOCUMENT = "mongo: no documents in result"
