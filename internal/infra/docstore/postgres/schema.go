package postgres

// ChangesChannel канал LISTEN/NOTIFY, в который триггер пишет имя коллекции
const ChangesChannel = "documents_changes"

const tableName = "documents"

// schema создаёт таблицу документов и триггер уведомлений об изменениях
const schema = `
CREATE TABLE IF NOT EXISTS documents (
    collection TEXT        NOT NULL,
    key        TEXT        NOT NULL,
    value      JSONB       NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (collection, key)
);

CREATE OR REPLACE FUNCTION documents_notify() RETURNS trigger AS $$
BEGIN
    IF TG_OP = 'DELETE' THEN
        PERFORM pg_notify('documents_changes', OLD.collection);
    ELSE
        PERFORM pg_notify('documents_changes', NEW.collection);
    END IF;
    RETURN NULL;
END;
$$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS documents_changed ON documents;

CREATE TRIGGER documents_changed
    AFTER INSERT OR UPDATE OR DELETE ON documents
    FOR EACH ROW EXECUTE FUNCTION documents_notify();
`
